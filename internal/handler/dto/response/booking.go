package response

import (
	"time"

	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	VenueID           uuid.UUID `json:"venue_id"`
	VenueName         string    `json:"venue_name"`
	BookingDate       string    `json:"booking_date"`
	BookingTime       string    `json:"booking_time"`
	PartySize         int       `json:"party_size"`
	SeatingPreference string    `json:"seating_preference"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromSlotView(view *queries.SlotView) *BookingResponse {
	return &BookingResponse{
		ID:                view.ID,
		VenueID:           view.VenueID,
		VenueName:         view.VenueName,
		BookingDate:       view.BookingDate,
		BookingTime:       view.BookingTime,
		PartySize:         view.PartySize,
		SeatingPreference: view.SeatingPreference,
		Status:            view.Status,
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}
}

type ReconciliationResponse struct {
	Removed int `json:"removed"`
}
