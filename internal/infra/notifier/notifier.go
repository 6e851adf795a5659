package notifier

import (
	"context"
	"encoding/json"

	"tablebook/internal/domain/slot"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxNotifier records a notification job row per booking decision. A
// separate delivery worker drains the table; this service only enqueues.
type OutboxNotifier struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewOutboxNotifier(db *pgxpool.Pool, clock clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{db: db, clock: clock}
}

func (n *OutboxNotifier) SlotDecided(ctx context.Context, slotID, requesterID uuid.UUID, status slot.Status) error {
	payload, err := json.Marshal(map[string]any{
		"slot_id":      slotID,
		"requester_id": requesterID,
		"status":       status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	const q = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := n.db.Exec(ctx, q, "email", "booking_decided", payload, n.clock.Now()); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
