package api

import (
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatCommands commands.ChatCommands
}

func NewChatHandler(chatCommands commands.ChatCommands) *ChatHandler {
	return &ChatHandler{chatCommands: chatCommands}
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req reqdto.ChatMessageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	reply, err := h.chatCommands.ProcessMessage(c.Request.Context(), req.SessionToken, req.Message)
	if err != nil {
		// Collaborator failure (catalog or session store); the session
		// itself was not corrupted, the client may simply retry.
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Chat is temporarily unavailable, please try again", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReply(reply))
}
