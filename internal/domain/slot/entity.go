package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPastDate                 = errors.New("booking date is in the past")
	ErrInvalidSeatingPreference = errors.New("invalid seating preference")
	ErrInvalidOutcome           = errors.New("invalid outcome")
	ErrInvalidStatus            = errors.New("invalid slot status")
)

// Slot is a single reservation opportunity admitted by the controller.
// Status transitions: pending -> confirmed, pending -> cancelled; both
// terminal states are sticky.
type Slot struct {
	id          uuid.UUID
	key         Key
	partySize   PartySize
	seating     SeatingPreference
	requesterID uuid.UUID
	status      Status
	requestedAt time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSlot validates a reservation request and produces a pending slot.
// now decides the past-date check; callers inject it through a clock.
func NewSlot(
	now time.Time,
	key Key,
	partySize int,
	seating SeatingPreference,
	requesterID uuid.UUID,
) (*Slot, error) {
	size, err := NewPartySize(partySize)
	if err != nil {
		return nil, err
	}
	if !seating.IsValid() {
		return nil, ErrInvalidSeatingPreference
	}
	if key.IsBefore(now) {
		return nil, ErrPastDate
	}

	return &Slot{
		id:          uuid.New(),
		key:         key,
		partySize:   size,
		seating:     seating,
		requesterID: requesterID,
		status:      StatusPending,
		requestedAt: now,
	}, nil
}

func ReconstructSlot(
	id uuid.UUID,
	key Key,
	partySize PartySize,
	seating SeatingPreference,
	requesterID uuid.UUID,
	status Status,
	requestedAt, createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		key:         key,
		partySize:   partySize,
		seating:     seating,
		requesterID: requesterID,
		status:      status,
		requestedAt: requestedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ApplyOutcome advances a pending slot to its terminal status. It reports
// whether a transition actually happened: applying any outcome to a slot
// already in a terminal state is a no-op, which is what makes confirm
// idempotent under at-least-once delivery.
func (s *Slot) ApplyOutcome(outcome Outcome) (bool, error) {
	if !outcome.IsValid() {
		return false, ErrInvalidOutcome
	}
	if s.status.IsTerminal() {
		return false, nil
	}
	s.status = outcome.TargetStatus()
	return true, nil
}

func (s *Slot) IsPending() bool {
	return s.status == StatusPending
}

func (s *Slot) IsCancelled() bool {
	return s.status == StatusCancelled
}

func (s *Slot) ID() uuid.UUID                      { return s.id }
func (s *Slot) Key() Key                           { return s.key }
func (s *Slot) VenueID() uuid.UUID                 { return s.key.VenueID }
func (s *Slot) Date() time.Time                    { return s.key.Date }
func (s *Slot) Time() TimeOfDay                    { return s.key.Time }
func (s *Slot) PartySize() PartySize               { return s.partySize }
func (s *Slot) SeatingPreference() SeatingPreference { return s.seating }
func (s *Slot) RequesterID() uuid.UUID             { return s.requesterID }
func (s *Slot) Status() Status                     { return s.status }
func (s *Slot) RequestedAt() time.Time             { return s.requestedAt }
func (s *Slot) CreatedAt() time.Time               { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time               { return s.updatedAt }
