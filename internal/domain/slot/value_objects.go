package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

var (
	ErrPartySizeOutOfRange = errors.New("party size out of range")
	ErrInvalidBookingTime  = errors.New("invalid booking time")
	ErrInvalidDate         = errors.New("invalid booking date")
)

type PartySize struct {
	value int
}

func NewPartySize(value int) (PartySize, error) {
	if value < MinPartySize || value > MaxPartySize {
		return PartySize{}, ErrPartySizeOutOfRange
	}
	return PartySize{value: value}, nil
}

func (p PartySize) Value() int {
	return p.value
}

// TimeOfDay is a wall-clock booking time with minute precision ("19:30").
type TimeOfDay struct {
	value string
}

func NewTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return TimeOfDay{}, ErrInvalidBookingTime
	}
	return TimeOfDay{value: t.Format("15:04")}, nil
}

func (t TimeOfDay) String() string {
	return t.value
}

// Key identifies a reservation opportunity: one venue, one date, one time.
// The storage layer carries a matching uniqueness constraint.
type Key struct {
	VenueID uuid.UUID
	Date    time.Time
	Time    TimeOfDay
}

func NewKey(venueID uuid.UUID, date time.Time, timeOfDay TimeOfDay) (Key, error) {
	if venueID == uuid.Nil {
		return Key{}, errors.New("venue id is required")
	}
	if date.IsZero() {
		return Key{}, ErrInvalidDate
	}
	return Key{
		VenueID: venueID,
		Date:    truncateToDate(date),
		Time:    timeOfDay,
	}, nil
}

// IsBefore reports whether the key's date falls strictly before the date
// part of now. Same-day bookings are allowed.
func (k Key) IsBefore(now time.Time) bool {
	return k.Date.Before(truncateToDate(now))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
