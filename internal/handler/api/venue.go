package api

import (
	"net/http"

	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueQueries queries.VenueQueries
}

func NewVenueHandler(venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{venueQueries: venueQueries}
}

func (h *VenueHandler) List(c *gin.Context) {
	views, err := h.venueQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, toVenueResponses(views))
}

// Search filters venues by cuisine and/or location substring, best rated
// first.
func (h *VenueHandler) Search(c *gin.Context) {
	cuisine := c.Query("cuisine")
	location := c.Query("location")

	views, err := h.venueQueries.Search(c.Request.Context(), cuisine, location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, toVenueResponses(views))
}

func toVenueResponses(views []*queries.VenueView) []*resdto.VenueResponse {
	responseList := make([]*resdto.VenueResponse, len(views))
	for i, view := range views {
		responseList[i] = resdto.FromVenueView(view)
	}
	return responseList
}
