package response

import (
	"tablebook/internal/domain/conversation"

	"github.com/google/uuid"
)

type ChatVenueResult struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	Location  string    `json:"location"`
	Rating    float64   `json:"rating"`
	PriceTier string    `json:"price_tier"`
}

type ChatReplyResponse struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Results []ChatVenueResult `json:"results,omitempty"`
}

func FromReply(reply *conversation.Reply) *ChatReplyResponse {
	resp := &ChatReplyResponse{
		Type:    string(reply.Kind),
		Message: reply.Message,
	}
	for _, hit := range reply.Venues {
		resp.Results = append(resp.Results, ChatVenueResult{
			ID:        hit.ID,
			Name:      hit.Name,
			Cuisine:   hit.Cuisine,
			Location:  hit.Location,
			Rating:    hit.Rating,
			PriceTier: hit.PriceTier,
		})
	}
	return resp
}
