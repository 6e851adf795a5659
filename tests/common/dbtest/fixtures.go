//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestVenue(t *testing.T, db DBLike, name, cuisine, location string, rating float64) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO venues (id, name, cuisine, location, price_tier, rating) VALUES ($1, $2, $3, $4, 'moderate', $5)",
		venueID, name, cuisine, location, rating)
	require.NoError(t, err)

	return venueID
}

// InsertSlotRow writes a slot row directly, bypassing the domain layer.
// Used to stage legacy data for reconciliation tests; cancelled rows can
// share a key with one active row without tripping the unique index.
func InsertSlotRow(t *testing.T, db DBLike, venueID uuid.UUID, date time.Time, bookingTime, status string, createdAt time.Time) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO slots (id, venue_id, booking_date, booking_time, party_size,
		                    seating_preference, requester_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4::time, 2, 'standard', $5, $6, $7, $7)`,
		slotID, venueID, date, bookingTime, uuid.New(), status, createdAt)
	require.NoError(t, err)

	return slotID
}

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE slots, notification_jobs, venues CASCADE")
	return err
}
