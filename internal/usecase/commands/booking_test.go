//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tablebook/internal/domain/slot"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/commands"
	"tablebook/tests/common/builder"
	commandsmock "tablebook/tests/mock/commands"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *commandsmock.MockSlotRepository
	slotQueries *queriesmock.MockSlotQueries
	clock       *clock.MockClock
	commands    commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockSlotRepository(s.ctrl)
	s.slotQueries = queriesmock.NewMockSlotQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(s.repo, s.slotQueries, s.clock)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestRequestSlot() {
	ctx := context.Background()

	s.Run("success: pending slot created and read back", func() {
		b := builder.NewSlotBuilder()
		view := b.BuildView("pending")

		s.repo.EXPECT().FindActiveByKey(gomock.Any(), gomock.Any()).Return(uuid.Nil, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		s.slotQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := s.commands.RequestSlot(ctx, b.BuildRequestParams())
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("conflict: pre-check finds an occupant", func() {
		b := builder.NewSlotBuilder()

		s.repo.EXPECT().FindActiveByKey(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		_, err := s.commands.RequestSlot(ctx, b.BuildRequestParams())
		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("conflict: lost race surfaces as unavailable", func() {
		b := builder.NewSlotBuilder()

		s.repo.EXPECT().FindActiveByKey(gomock.Any(), gomock.Any()).Return(uuid.Nil, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert slot", errors.New("duplicate key value"), infra.KindDuplicateKey))

		_, err := s.commands.RequestSlot(ctx, b.BuildRequestParams())
		s.Require().ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("validation errors never reach the repository", func() {
		cases := []struct {
			name   string
			mutate func(*builder.SlotBuilder)
			errIs  error
		}{
			{
				name:   "party size too small",
				mutate: func(b *builder.SlotBuilder) { b.PartySize = 0 },
				errIs:  commands.ErrInvalidPartySize,
			},
			{
				name:   "party size too large",
				mutate: func(b *builder.SlotBuilder) { b.PartySize = 21 },
				errIs:  commands.ErrInvalidPartySize,
			},
			{
				name:   "past date",
				mutate: func(b *builder.SlotBuilder) { b.BookingDate = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC) },
				errIs:  commands.ErrPastDate,
			},
			{
				name:   "unparseable time",
				mutate: func(b *builder.SlotBuilder) { b.BookingTime = "half past seven" },
				errIs:  commands.ErrInvalidBookingTime,
			},
			{
				name:   "unknown seating",
				mutate: func(b *builder.SlotBuilder) { b.SeatingPreference = "rooftop" },
				errIs:  commands.ErrInvalidSeating,
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				b := builder.NewSlotBuilder().With(tc.mutate)

				_, err := s.commands.RequestSlot(ctx, b.BuildRequestParams())
				s.Require().ErrorIs(err, tc.errIs)
			})
		}
	})

	s.Run("error: pre-check database failure", func() {
		b := builder.NewSlotBuilder()

		s.repo.EXPECT().FindActiveByKey(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("find active slot", errors.New("connection reset")))

		_, err := s.commands.RequestSlot(ctx, b.BuildRequestParams())
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("error: non-duplicate insert failure", func() {
		b := builder.NewSlotBuilder()

		s.repo.EXPECT().FindActiveByKey(gomock.Any(), gomock.Any()).Return(uuid.Nil, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert slot", errors.New("connection reset")))

		_, err := s.commands.RequestSlot(ctx, b.BuildRequestParams())
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *BookingCommandsTestSuite) TestConfirmSlot() {
	ctx := context.Background()

	s.Run("success: approval transitions a pending slot", func() {
		b := builder.NewSlotBuilder()
		entity, err := b.BuildDomain()
		s.Require().NoError(err)
		view := b.BuildView("confirmed")

		s.repo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.repo.EXPECT().FinalizePending(gomock.Any(), entity.ID(), slot.StatusConfirmed).Return(true, nil)
		s.slotQueries.EXPECT().GetByID(gomock.Any(), entity.ID()).Return(view, nil)

		result, err := s.commands.ConfirmSlot(ctx, entity.ID(), slot.OutcomeApproved)
		s.Require().NoError(err)
		s.True(result.Transitioned)
		s.Equal("confirmed", result.Slot.Status)
	})

	s.Run("success: rejection cancels a pending slot", func() {
		b := builder.NewSlotBuilder()
		entity, err := b.BuildDomain()
		s.Require().NoError(err)
		view := b.BuildView("cancelled")

		s.repo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.repo.EXPECT().FinalizePending(gomock.Any(), entity.ID(), slot.StatusCancelled).Return(true, nil)
		s.slotQueries.EXPECT().GetByID(gomock.Any(), entity.ID()).Return(view, nil)

		result, err := s.commands.ConfirmSlot(ctx, entity.ID(), slot.OutcomeRejected)
		s.Require().NoError(err)
		s.True(result.Transitioned)
	})

	s.Run("idempotent: replay against a terminal slot skips the update", func() {
		b := builder.NewSlotBuilder()
		entity, err := b.BuildDomain()
		s.Require().NoError(err)
		_, err = entity.ApplyOutcome(slot.OutcomeApproved)
		s.Require().NoError(err)
		view := b.BuildView("confirmed")

		s.repo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.slotQueries.EXPECT().GetByID(gomock.Any(), entity.ID()).Return(view, nil)

		result, err := s.commands.ConfirmSlot(ctx, entity.ID(), slot.OutcomeApproved)
		s.Require().NoError(err)
		s.False(result.Transitioned)
		s.Equal("confirmed", result.Slot.Status)
	})

	s.Run("idempotent: stale pending read loses the race to a concurrent delivery", func() {
		// Both deliveries read the slot before either write committed, so
		// this one still sees pending. The guarded write finds the row
		// already terminal; no transition may be claimed.
		b := builder.NewSlotBuilder()
		entity, err := b.BuildDomain()
		s.Require().NoError(err)
		view := b.BuildView("confirmed")

		s.repo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.repo.EXPECT().FinalizePending(gomock.Any(), entity.ID(), slot.StatusConfirmed).Return(false, nil)
		s.slotQueries.EXPECT().GetByID(gomock.Any(), entity.ID()).Return(view, nil)

		result, err := s.commands.ConfirmSlot(ctx, entity.ID(), slot.OutcomeApproved)
		s.Require().NoError(err)
		s.False(result.Transitioned)
		s.Equal("confirmed", result.Slot.Status)
	})

	s.Run("error: guarded update failure", func() {
		b := builder.NewSlotBuilder()
		entity, err := b.BuildDomain()
		s.Require().NoError(err)

		s.repo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.repo.EXPECT().FinalizePending(gomock.Any(), entity.ID(), slot.StatusConfirmed).
			Return(false, infra.WrapRepoErr("finalize slot", errors.New("connection reset")))

		_, err = s.commands.ConfirmSlot(ctx, entity.ID(), slot.OutcomeApproved)
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("error: unknown slot", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("find slot", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.ConfirmSlot(ctx, id, slot.OutcomeApproved)
		s.Require().ErrorIs(err, commands.ErrSlotNotFound)
	})

	s.Run("error: malformed outcome", func() {
		b := builder.NewSlotBuilder()
		entity, err := b.BuildDomain()
		s.Require().NoError(err)

		s.repo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err = s.commands.ConfirmSlot(ctx, entity.ID(), slot.Outcome("maybe"))
		s.Require().ErrorIs(err, commands.ErrInvalidOutcome)
	})
}

func (s *BookingCommandsTestSuite) TestReconcileDuplicates() {
	ctx := context.Background()

	makeKey := func() slot.Key {
		timeOfDay, err := slot.NewTimeOfDay("19:30")
		s.Require().NoError(err)
		key, err := slot.NewKey(uuid.New(), time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), timeOfDay)
		s.Require().NoError(err)
		return key
	}

	s.Run("keeps the newest non-cancelled slot", func() {
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		newestCancelled := commands.DuplicateSlot{ID: uuid.New(), Status: slot.StatusCancelled, CreatedAt: now}
		keeper := commands.DuplicateSlot{ID: uuid.New(), Status: slot.StatusPending, CreatedAt: now.Add(-time.Hour)}
		oldest := commands.DuplicateSlot{ID: uuid.New(), Status: slot.StatusConfirmed, CreatedAt: now.Add(-2 * time.Hour)}

		s.repo.EXPECT().FindDuplicateGroups(gomock.Any()).Return([]commands.DuplicateGroup{
			{Key: makeKey(), Slots: []commands.DuplicateSlot{newestCancelled, keeper, oldest}},
		}, nil)
		s.repo.EXPECT().Delete(gomock.Any(), newestCancelled.ID).Return(nil)
		s.repo.EXPECT().Delete(gomock.Any(), oldest.ID).Return(nil)

		removed, err := s.commands.ReconcileDuplicates(ctx)
		s.Require().NoError(err)
		s.Equal(2, removed)
	})

	s.Run("keeps the newest record when the whole group is cancelled", func() {
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		newest := commands.DuplicateSlot{ID: uuid.New(), Status: slot.StatusCancelled, CreatedAt: now}
		older := commands.DuplicateSlot{ID: uuid.New(), Status: slot.StatusCancelled, CreatedAt: now.Add(-time.Hour)}

		s.repo.EXPECT().FindDuplicateGroups(gomock.Any()).Return([]commands.DuplicateGroup{
			{Key: makeKey(), Slots: []commands.DuplicateSlot{newest, older}},
		}, nil)
		s.repo.EXPECT().Delete(gomock.Any(), older.ID).Return(nil)

		removed, err := s.commands.ReconcileDuplicates(ctx)
		s.Require().NoError(err)
		s.Equal(1, removed)
	})

	s.Run("idempotent: a clean table removes nothing", func() {
		s.repo.EXPECT().FindDuplicateGroups(gomock.Any()).Return(nil, nil)

		removed, err := s.commands.ReconcileDuplicates(ctx)
		s.Require().NoError(err)
		s.Equal(0, removed)
	})

	s.Run("error: sweep aborts on delete failure", func() {
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		newest := commands.DuplicateSlot{ID: uuid.New(), Status: slot.StatusPending, CreatedAt: now}
		older := commands.DuplicateSlot{ID: uuid.New(), Status: slot.StatusPending, CreatedAt: now.Add(-time.Hour)}

		s.repo.EXPECT().FindDuplicateGroups(gomock.Any()).Return([]commands.DuplicateGroup{
			{Key: makeKey(), Slots: []commands.DuplicateSlot{newest, older}},
		}, nil)
		s.repo.EXPECT().Delete(gomock.Any(), older.ID).
			Return(infra.WrapRepoErr("delete slot", errors.New("connection reset")))

		_, err := s.commands.ReconcileDuplicates(ctx)
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
