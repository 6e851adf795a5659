//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "tablebook/internal/handler/dto/response"
	"tablebook/tests/common/dbtest"
	"tablebook/tests/common/httptest"
	"tablebook/tests/e2e"
	"tablebook/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	reconcileURL = "/api/admin/bookings/reconciliation"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwtHelper *helper.JWTTestHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = helper.NewJWTTestHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) newBookingRequest(venueID uuid.UUID) map[string]any {
	return map[string]any{
		"venue_id":           venueID,
		"booking_date":       time.Now().AddDate(0, 0, 7).Format(time.DateOnly),
		"booking_time":       "19:30",
		"party_size":         4,
		"seating_preference": "booth",
	}
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("creates a pending booking and reads it back", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.newBookingRequest(venueID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "pending", created.Status)
		require.Equal(t, "19:30", created.BookingTime)
		require.Equal(t, "Trattoria Uno", created.VenueName)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("rejects a second booking for an occupied slot", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		req := s.newBookingRequest(venueID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.jwtHelper.GenerateToken(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.jwtHelper.GenerateToken(t, uuid.New()))
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("a rejected booking frees the slot", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		req := s.newBookingRequest(venueID)
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/confirmation",
			map[string]any{"outcome": "rejected"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.jwtHelper.GenerateToken(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("concurrent requests for one slot produce exactly one winner", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		req := s.newBookingRequest(venueID)

		const workers = 8
		codes := make(chan int, workers)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.jwtHelper.GenerateToken(t, uuid.New()))
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		created, conflicted := 0, 0
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one request must win the slot")
		require.Equal(t, workers-1, conflicted)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM slots WHERE status <> 'cancelled'").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("validation failures are rejected before storage", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		oversized := s.newBookingRequest(venueID)
		oversized["party_size"] = 21
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, oversized, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		past := s.newBookingRequest(venueID)
		past["booking_date"] = "2020-01-01"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, past, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		var count int
		err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM slots").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	s.Run("requires authentication", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.newBookingRequest(venueID), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := s.jwtHelper.CreateExpiredToken(t, uuid.New())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.newBookingRequest(venueID), expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingSuite) TestConfirmBooking() {
	s.Run("approval transitions once and notifies once", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.newBookingRequest(venueID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		confirmURL := bookingsURL + "/" + created.ID.String() + "/confirmation"
		body := map[string]any{"outcome": "approved"}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var confirmed resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "confirmed", confirmed.Status)

		// Replay: still 200, still confirmed, no extra notification.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var jobs int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM notification_jobs WHERE topic = 'booking_decided'").Scan(&jobs)
		require.NoError(t, err)
		require.Equal(t, 1, jobs, "replayed confirmation must not enqueue another notification")
	})

	s.Run("concurrent confirmations claim exactly one transition", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.newBookingRequest(venueID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		confirmURL := bookingsURL + "/" + created.ID.String() + "/confirmation"
		body := map[string]any{"outcome": "approved"}

		const workers = 8
		codes := make(chan int, workers)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, body, token)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		for code := range codes {
			require.Equal(t, http.StatusOK, code)
		}

		var jobs int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM notification_jobs WHERE topic = 'booking_decided'").Scan(&jobs)
		require.NoError(t, err)
		require.Equal(t, 1, jobs, "racing deliveries must enqueue exactly one notification")
	})

	s.Run("unknown booking returns 404", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+uuid.NewString()+"/confirmation",
			map[string]any{"outcome": "approved"}, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestListBookings() {
	s.Run("lists only the requester's bookings", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		mineID := uuid.New()
		mineToken := s.jwtHelper.GenerateToken(t, mineID)

		var created resdto.BookingResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.newBookingRequest(venueID), mineToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		other := s.newBookingRequest(venueID)
		other["booking_time"] = "20:30"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, other, s.jwtHelper.GenerateToken(t, uuid.New()))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, mineToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listed []resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 1)
		if diff := cmp.Diff(created, listed[0]); diff != "" {
			t.Errorf("listed booking mismatch (-created +listed):\n%s", diff)
		}
	})
}

func (s *BookingSuite) TestReconcileDuplicates() {
	s.Run("sweeps legacy duplicates and is idempotent", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, "Trattoria Uno", "Italian", "downtown", 4.8)
		date := time.Now().AddDate(0, 0, 14).UTC().Truncate(24 * time.Hour)
		now := time.Now().UTC()

		// Legacy state: two cancelled rows plus one pending row share a key.
		dbtest.InsertSlotRow(t, s.DB, venueID, date, "19:30", "cancelled", now.Add(-3*time.Hour))
		dbtest.InsertSlotRow(t, s.DB, venueID, date, "19:30", "cancelled", now.Add(-2*time.Hour))
		keeperID := dbtest.InsertSlotRow(t, s.DB, venueID, date, "19:30", "pending", now.Add(-1*time.Hour))

		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reconcileURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result resdto.ReconciliationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.Equal(t, 2, result.Removed)

		var survivor uuid.UUID
		err := s.DB.QueryRow(context.Background(),
			"SELECT id FROM slots WHERE venue_id = $1", venueID).Scan(&survivor)
		require.NoError(t, err)
		require.Equal(t, keeperID, survivor, "the newest non-cancelled slot must survive")

		// Second run finds a clean table.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reconcileURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.Equal(t, 0, result.Removed)
	})
}
