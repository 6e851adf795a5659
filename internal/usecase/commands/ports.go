package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/conversation"
	"tablebook/internal/domain/slot"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// SlotRepository is the write-side store for reservation slots. Insert must
// be backed by a uniqueness constraint on the slot key restricted to
// non-cancelled rows; a violation surfaces as a duplicate-key repository
// error.
type SlotRepository interface {
	Insert(ctx context.Context, s *slot.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	// FindActiveByKey returns the id of the non-cancelled slot occupying
	// key, or uuid.Nil when the key is free.
	FindActiveByKey(ctx context.Context, key slot.Key) (uuid.UUID, error)
	// FinalizePending moves a slot out of pending into status. It writes
	// only while the stored row is still pending and reports whether the
	// write landed, so concurrent deliveries of the same decision cannot
	// both claim the transition.
	FinalizePending(ctx context.Context, id uuid.UUID, status slot.Status) (bool, error)
	FindDuplicateGroups(ctx context.Context) ([]DuplicateGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DuplicateGroup is one slot key occupied by more than one record, with its
// slots ordered newest first. Such groups only exist in data created before
// the uniqueness constraint was in place.
type DuplicateGroup struct {
	Key   slot.Key
	Slots []DuplicateSlot
}

type DuplicateSlot struct {
	ID        uuid.UUID
	Status    slot.Status
	CreatedAt time.Time
}

// SessionStore persists the slot-finder's {state, context} between turns.
// Expiry belongs to the store, not to the chat usecase.
type SessionStore interface {
	Load(ctx context.Context, token string) (*SessionBlob, error)
	Save(ctx context.Context, token string, blob SessionBlob) error
}

type SessionBlob struct {
	State   conversation.State   `json:"state"`
	Context conversation.Context `json:"context"`
}

// Notifier delivers a decision message to the slot's requester. The handler
// layer invokes it exactly once per real transition; the admission
// controller itself never does.
type Notifier interface {
	SlotDecided(ctx context.Context, slotID, requesterID uuid.UUID, status slot.Status) error
}
