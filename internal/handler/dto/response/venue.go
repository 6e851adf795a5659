package response

import (
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	Location  string    `json:"location"`
	PriceTier string    `json:"price_tier"`
	Rating    float64   `json:"rating"`
}

func FromVenueView(view *queries.VenueView) *VenueResponse {
	return &VenueResponse{
		ID:        view.ID,
		Name:      view.Name,
		Cuisine:   view.Cuisine,
		Location:  view.Location,
		PriceTier: view.PriceTier,
		Rating:    view.Rating,
	}
}
