package readstore

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotReadStore struct {
	db *pgxpool.Pool
}

func NewSlotReadStore(db *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{db: db}
}

const slotViewColumns = `
	s.id, s.venue_id, v.name,
	to_char(s.booking_date, 'YYYY-MM-DD'), to_char(s.booking_time, 'HH24:MI'),
	s.party_size, s.seating_preference, s.requester_id, s.status,
	s.created_at, s.updated_at`

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	q := `SELECT` + slotViewColumns + `
		FROM slots s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.id = $1`

	view, err := scanSlotView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return view, nil
}

func (r *SlotReadStore) FindByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*queries.SlotView, error) {
	q := `SELECT` + slotViewColumns + `
		FROM slots s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.requester_id = $1
		ORDER BY s.booking_date DESC, s.booking_time DESC`

	rows, err := r.db.Query(ctx, q, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots by requester", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlotView(row rowScanner) (*queries.SlotView, error) {
	var (
		view      queries.SlotView
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&view.ID, &view.VenueID, &view.VenueName,
		&view.BookingDate, &view.BookingTime,
		&view.PartySize, &view.SeatingPreference, &view.RequesterID, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt
	return &view, nil
}
