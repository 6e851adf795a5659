package queries

import (
	"context"
	"time"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/queries/slot.go -package=queriesmock

var ErrSlotNotFound = errs.New("slot not found")

// Read models (DTO for read side)
type SlotView struct {
	ID                uuid.UUID `json:"id"`
	VenueID           uuid.UUID `json:"venue_id"`
	VenueName         string    `json:"venue_name"`
	BookingDate       string    `json:"booking_date"`
	BookingTime       string    `json:"booking_time"`
	PartySize         int       `json:"party_size"`
	SeatingPreference string    `json:"seating_preference"`
	RequesterID       uuid.UUID `json:"requester_id"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*SlotView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *slotQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*SlotView, error) {
	return q.store.FindByRequesterID(ctx, requesterID)
}
