package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VenueID           uuid.UUID `json:"venue_id" binding:"required"`
	BookingDate       string    `json:"booking_date" binding:"required"`
	BookingTime       string    `json:"booking_time" binding:"required"`
	PartySize         int       `json:"party_size" binding:"required"`
	SeatingPreference string    `json:"seating_preference"`
}

// ParseDate validates the wire format only; range checks belong to the
// domain layer.
func (r CreateBookingRequest) ParseDate() (time.Time, error) {
	date, err := time.Parse(time.DateOnly, r.BookingDate)
	if err != nil {
		return time.Time{}, errors.New("booking_date must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

func (r CreateBookingRequest) SeatingOrDefault() string {
	if r.SeatingPreference == "" {
		return "standard"
	}
	return r.SeatingPreference
}

type ConfirmBookingRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=approved rejected"`
}
