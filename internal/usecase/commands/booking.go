package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tablebook/internal/domain/slot"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

var (
	ErrInvalidPartySize        = errs.New("invalid party size")
	ErrPastDate                = errs.New("booking date in the past")
	ErrInvalidSeating          = errs.New("invalid seating preference")
	ErrInvalidBookingTime      = errs.New("invalid booking time")
	ErrSlotUnavailable         = errs.New("slot unavailable")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrInvalidOutcome          = errs.New("invalid outcome")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type RequestSlotParams struct {
	VenueID           uuid.UUID
	Date              time.Time
	Time              string
	PartySize         int
	SeatingPreference string
	RequesterID       uuid.UUID
}

// ConfirmSlotResult reports the slot's state after applying an outcome.
// Transitioned is false on an idempotent replay so callers know not to
// notify again.
type ConfirmSlotResult struct {
	Slot         *queries.SlotView
	Transitioned bool
}

type BookingCommands interface {
	RequestSlot(ctx context.Context, params RequestSlotParams) (*queries.SlotView, error)
	ConfirmSlot(ctx context.Context, slotID uuid.UUID, outcome slot.Outcome) (*ConfirmSlotResult, error)
	ReconcileDuplicates(ctx context.Context) (int, error)
}

type bookingCommandsImpl struct {
	slots       SlotRepository
	slotQueries queries.SlotQueries
	clock       clock.Clock
}

func NewBookingCommands(
	slots SlotRepository,
	slotQueries queries.SlotQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		slots:       slots,
		slotQueries: slotQueries,
		clock:       clock,
	}
}

// RequestSlot admits a reservation request or rejects it with a typed
// reason. The conflict pre-check is optimistic: two concurrent requests can
// both pass it, so the storage uniqueness constraint is the real arbiter
// and a duplicate-key error here is a benign lost race, reported exactly
// like a conflict the pre-check caught.
func (b *bookingCommandsImpl) RequestSlot(ctx context.Context, params RequestSlotParams) (*queries.SlotView, error) {
	entity, err := b.buildSlot(params)
	if err != nil {
		return nil, err
	}

	occupant, err := b.slots.FindActiveByKey(ctx, entity.Key())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if occupant != uuid.Nil {
		return nil, ErrSlotUnavailable
	}

	if err := b.slots.Insert(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Info("lost booking race for slot",
				"venue_id", entity.VenueID(),
				"booking_date", entity.Date().Format(time.DateOnly),
				"booking_time", entity.Time().String(),
			)
			return nil, ErrSlotUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := b.slotQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ConfirmSlot applies an approval or rejection to a pending slot. Replays
// against a terminal slot return the current state without transitioning.
// The in-memory entity only validates; whether a transition happened is
// decided by the guarded write, so two concurrent deliveries that both read
// a pending snapshot still produce exactly one transition.
func (b *bookingCommandsImpl) ConfirmSlot(ctx context.Context, slotID uuid.UUID, outcome slot.Outcome) (*ConfirmSlotResult, error) {
	entity, err := b.slots.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	transitioned, err := entity.ApplyOutcome(outcome)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOutcome)
	}

	if transitioned {
		transitioned, err = b.slots.FinalizePending(ctx, slotID, entity.Status())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !transitioned {
			slog.Info("lost confirm race for slot", "slot_id", slotID)
		}
	}

	view, err := b.slotQueries.GetByID(ctx, slotID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &ConfirmSlotResult{Slot: view, Transitioned: transitioned}, nil
}

// ReconcileDuplicates sweeps slot-key groups that predate the uniqueness
// constraint, keeping the newest non-cancelled slot per group and removing
// the rest. A second run finds nothing to remove.
func (b *bookingCommandsImpl) ReconcileDuplicates(ctx context.Context) (int, error) {
	groups, err := b.slots.FindDuplicateGroups(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	removed := 0
	for _, group := range groups {
		keeper := pickKeeper(group.Slots)
		for _, dup := range group.Slots {
			if dup.ID == keeper {
				continue
			}
			if err := b.slots.Delete(ctx, dup.ID); err != nil {
				return removed, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			removed++
		}
		slog.Info("reconciled duplicate slots",
			"venue_id", group.Key.VenueID,
			"booking_date", group.Key.Date.Format(time.DateOnly),
			"booking_time", group.Key.Time.String(),
			"kept", keeper,
		)
	}
	return removed, nil
}

// pickKeeper selects the newest non-cancelled slot; when the whole group is
// cancelled the newest record survives. Slots arrive ordered newest first.
func pickKeeper(slots []DuplicateSlot) uuid.UUID {
	for _, s := range slots {
		if s.Status != slot.StatusCancelled {
			return s.ID
		}
	}
	return slots[0].ID
}

func (b *bookingCommandsImpl) buildSlot(params RequestSlotParams) (*slot.Slot, error) {
	timeOfDay, err := slot.NewTimeOfDay(params.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingTime)
	}

	key, err := slot.NewKey(params.VenueID, params.Date, timeOfDay)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := slot.NewSlot(
		b.clock.Now(),
		key,
		params.PartySize,
		slot.SeatingPreference(params.SeatingPreference),
		params.RequesterID,
	)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrPartySizeOutOfRange):
			return nil, errs.Mark(err, ErrInvalidPartySize)
		case errors.Is(err, slot.ErrPastDate):
			return nil, errs.Mark(err, ErrPastDate)
		case errors.Is(err, slot.ErrInvalidSeatingPreference):
			return nil, errs.Mark(err, ErrInvalidSeating)
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}
	return entity, nil
}
