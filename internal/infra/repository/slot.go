package repository

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/slot"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type SlotRepository struct {
	db *pgxpool.Pool
}

func NewSlotRepository(db *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{db: db}
}

// Insert writes a new slot row. The partial unique index on
// (venue_id, booking_date, booking_time) decides races between concurrent
// inserts; a violation comes back as KindDuplicateKey.
func (r *SlotRepository) Insert(ctx context.Context, s *slot.Slot) error {
	const q = `
		INSERT INTO slots (id, venue_id, booking_date, booking_time, party_size,
		                   seating_preference, requester_id, status)
		VALUES ($1, $2, $3, $4::time, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		s.ID(), s.VenueID(), s.Date(), s.Time().String(),
		s.PartySize().Value(), s.SeatingPreference().String(),
		s.RequesterID(), s.Status().String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("slot key already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert slot", err)
	}
	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	const q = `
		SELECT id, venue_id, booking_date, to_char(booking_time, 'HH24:MI'),
		       party_size, seating_preference, requester_id, status,
		       created_at, updated_at
		FROM slots
		WHERE id = $1`

	var (
		row struct {
			id          uuid.UUID
			venueID     uuid.UUID
			date        time.Time
			timeOfDay   string
			partySize   int
			seating     string
			requesterID uuid.UUID
			status      string
			createdAt   time.Time
			updatedAt   time.Time
		}
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&row.id, &row.venueID, &row.date, &row.timeOfDay,
		&row.partySize, &row.seating, &row.requesterID, &row.status,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return reconstructSlot(row.id, row.venueID, row.date, row.timeOfDay,
		row.partySize, row.seating, row.requesterID, row.status,
		row.createdAt, row.updatedAt)
}

func (r *SlotRepository) FindActiveByKey(ctx context.Context, key slot.Key) (uuid.UUID, error) {
	const q = `
		SELECT id FROM slots
		WHERE venue_id = $1 AND booking_date = $2 AND booking_time = $3::time
		  AND status <> 'cancelled'
		LIMIT 1`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, key.VenueID, key.Date, key.Time.String()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, nil
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find active slot by key", err)
	}
	return id, nil
}

// FinalizePending lets the row's stored status arbitrate the transition:
// the guard on status = 'pending' means at most one concurrent delivery
// sees an affected row, everyone else gets a benign zero.
func (r *SlotRepository) FinalizePending(ctx context.Context, id uuid.UUID, status slot.Status) (bool, error) {
	const q = `
		UPDATE slots SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to finalize slot status", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindDuplicateGroups scans for slot keys occupied by more than one row,
// returning each group's slots ordered newest first.
func (r *SlotRepository) FindDuplicateGroups(ctx context.Context) ([]commands.DuplicateGroup, error) {
	const q = `
		SELECT venue_id, booking_date, to_char(booking_time, 'HH24:MI'),
		       id, status, created_at
		FROM slots
		WHERE (venue_id, booking_date, booking_time) IN (
			SELECT venue_id, booking_date, booking_time
			FROM slots
			GROUP BY venue_id, booking_date, booking_time
			HAVING count(*) > 1
		)
		ORDER BY venue_id, booking_date, booking_time, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan for duplicate slots", err)
	}
	defer rows.Close()

	var (
		groups  []commands.DuplicateGroup
		current *commands.DuplicateGroup
	)
	for rows.Next() {
		var (
			venueID   uuid.UUID
			date      time.Time
			timeOfDay string
			id        uuid.UUID
			status    string
			createdAt time.Time
		)
		if err := rows.Scan(&venueID, &date, &timeOfDay, &id, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan duplicate slot row", err)
		}

		tod, err := slot.NewTimeOfDay(timeOfDay)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking time in storage", err)
		}
		key, err := slot.NewKey(venueID, date, tod)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot key in storage", err)
		}

		if current == nil || current.Key != key {
			groups = append(groups, commands.DuplicateGroup{Key: key})
			current = &groups[len(groups)-1]
		}
		current.Slots = append(current.Slots, commands.DuplicateSlot{
			ID:        id,
			Status:    slot.Status(status),
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read duplicate slot rows", err)
	}
	return groups, nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM slots WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	return nil
}

func reconstructSlot(
	id, venueID uuid.UUID,
	date time.Time,
	timeOfDay string,
	partySize int,
	seating string,
	requesterID uuid.UUID,
	status string,
	createdAt, updatedAt time.Time,
) (*slot.Slot, error) {
	tod, err := slot.NewTimeOfDay(timeOfDay)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking time in storage", err)
	}
	key, err := slot.NewKey(venueID, date, tod)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot key in storage", err)
	}
	size, err := slot.NewPartySize(partySize)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid party size in storage", err)
	}

	return slot.ReconstructSlot(
		id, key, size,
		slot.SeatingPreference(seating),
		requesterID,
		slot.Status(status),
		createdAt, createdAt, updatedAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
