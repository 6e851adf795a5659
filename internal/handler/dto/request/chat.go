package request

type ChatMessageRequest struct {
	SessionToken string `json:"session_token" binding:"required,max=128"`
	Message      string `json:"message" binding:"required,max=1000"`
}
