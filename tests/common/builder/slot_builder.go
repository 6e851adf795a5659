//go:build unit || e2e

package builder

import (
	"time"

	domslot "tablebook/internal/domain/slot"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	VenueID           uuid.UUID
	VenueName         string
	BookingDate       time.Time
	BookingTime       string
	PartySize         int
	SeatingPreference string
	RequesterID       uuid.UUID
	Now               time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &SlotBuilder{
		VenueID:           uuid.New(),
		VenueName:         "Test Venue",
		BookingDate:       now.AddDate(0, 0, 7),
		BookingTime:       "19:30",
		PartySize:         4,
		SeatingPreference: "standard",
		RequesterID:       uuid.New(),
		Now:               now,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	timeOfDay, err := domslot.NewTimeOfDay(b.BookingTime)
	if err != nil {
		return nil, err
	}
	key, err := domslot.NewKey(b.VenueID, b.BookingDate, timeOfDay)
	if err != nil {
		return nil, err
	}
	return domslot.NewSlot(b.Now, key, b.PartySize, domslot.SeatingPreference(b.SeatingPreference), b.RequesterID)
}

func (b *SlotBuilder) BuildRequestParams() commands.RequestSlotParams {
	return commands.RequestSlotParams{
		VenueID:           b.VenueID,
		Date:              b.BookingDate,
		Time:              b.BookingTime,
		PartySize:         b.PartySize,
		SeatingPreference: b.SeatingPreference,
		RequesterID:       b.RequesterID,
	}
}

func (b *SlotBuilder) BuildView(status string) *queries.SlotView {
	return &queries.SlotView{
		ID:                uuid.New(),
		VenueID:           b.VenueID,
		VenueName:         b.VenueName,
		BookingDate:       b.BookingDate.Format(time.DateOnly),
		BookingTime:       b.BookingTime,
		PartySize:         b.PartySize,
		SeatingPreference: b.SeatingPreference,
		RequesterID:       b.RequesterID,
		Status:            status,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID:           b.VenueID,
		BookingDate:       b.BookingDate.Format(time.DateOnly),
		BookingTime:       b.BookingTime,
		PartySize:         b.PartySize,
		SeatingPreference: b.SeatingPreference,
	}
}
