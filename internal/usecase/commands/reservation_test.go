//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"staybook/internal/domain/dwelling"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/builder"
	"staybook/internal/testutil/fake"
	commandsmock "staybook/internal/testutil/mock/commands"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *fake.UnitOfWork
	invalidator *commandsmock.MockSearchInvalidator
	clock       *clock.MockClock
	commands    commands.ReservationCommands

	dwelling *dwelling.Dwelling
	guestID  uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = fake.NewUnitOfWork(1)
	s.invalidator = commandsmock.NewMockSearchInvalidator(s.ctrl)
	s.clock = clock.NewMockClock(now)
	s.commands = commands.NewReservationUseCase(s.uow, s.invalidator, s.clock)

	s.dwelling = builder.NewDwellingBuilder().With(func(b *builder.DwellingBuilder) { b.MaxNights = 7 }).BuildReconstructed()
	s.uow.SeedDwelling(s.dwelling)
	s.guestID = uuid.New()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) createRequest(in, out string) commands.CreateReservationRequest {
	checkIn, _ := reservation.ParseDate("check_in", in)
	checkOut, _ := reservation.ParseDate("check_out", out)
	return commands.CreateReservationRequest{DwellingID: s.dwelling.ID(), CheckIn: checkIn, CheckOut: checkOut}
}

func (s *ReservationCommandsTestSuite) seed(mutate func(*builder.ReservationBuilder)) *reservation.Reservation {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.DwellingID = s.dwelling.ID()
		b.OwnerID = s.dwelling.OwnerID()
		b.GuestID = s.guestID
	}).With(mutate).BuildReconstructed()
	s.uow.SeedReservation(r)
	return r
}

// ================================================================================
// CreateReservation
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	s.Run("success: prices the stay and records the guest", func() {
		s.SetupTest()
		s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(1)

		actual, err := s.commands.CreateReservation(context.Background(), s.guestID, s.createRequest("2024-03-01", "2024-03-04"))
		s.Require().NoError(err)
		s.Equal(reservation.StatusAwaitingDecision, actual.Status())
		s.Equal(int64(30000), actual.TotalAmount().Minor())
		s.Equal(now, actual.CreatedAt())

		stored, ok := s.uow.Reservation(actual.ID())
		s.Require().True(ok)
		s.Equal(actual.Stay(), stored.Stay())
		s.True(s.uow.HasAccount(s.guestID))
	})

	s.Run("back-to-back stays do not conflict", func() {
		s.SetupTest()
		s.seed(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		})
		s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), uuid.New(), s.createRequest("2024-03-04", "2024-03-06"))
		s.Require().NoError(err)
	})

	s.Run("rejected reservations free their dates", func() {
		s.SetupTest()
		s.seed(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusRejected })
		s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), uuid.New(), s.createRequest("2024-03-01", "2024-03-04"))
		s.Require().NoError(err)
	})

	testCases := []struct {
		name    string
		guestID func(s *ReservationCommandsTestSuite) uuid.UUID
		req     func(s *ReservationCommandsTestSuite) commands.CreateReservationRequest
		seed    bool
		errIs   error
	}{
		{
			name: "overlapping stay is a booking conflict",
			req:  func(s *ReservationCommandsTestSuite) commands.CreateReservationRequest { return s.createRequest("2024-03-03", "2024-03-05") },
			seed: true, errIs: errs.ErrBookingConflict,
		},
		{
			name: "unknown dwelling",
			req: func(s *ReservationCommandsTestSuite) commands.CreateReservationRequest {
				r := s.createRequest("2024-03-01", "2024-03-02")
				r.DwellingID = uuid.New()
				return r
			},
			errIs: errs.ErrDwellingNotFound,
		},
		{
			name:    "host cannot book their own dwelling",
			guestID: func(s *ReservationCommandsTestSuite) uuid.UUID { return s.dwelling.OwnerID() },
			req:     func(s *ReservationCommandsTestSuite) commands.CreateReservationRequest { return s.createRequest("2024-03-01", "2024-03-02") },
			errIs:   errs.ErrForbidden,
		},
		{
			name:  "check-out before check-in",
			req:   func(s *ReservationCommandsTestSuite) commands.CreateReservationRequest { return s.createRequest("2024-03-05", "2024-03-01") },
			errIs: errs.ErrConflictInput,
		},
		{
			name:  "zero-night stay",
			req:   func(s *ReservationCommandsTestSuite) commands.CreateReservationRequest { return s.createRequest("2024-03-05", "2024-03-05") },
			errIs: errs.ErrConflictInput,
		},
		{
			name:  "stay longer than the maximum",
			req:   func(s *ReservationCommandsTestSuite) commands.CreateReservationRequest { return s.createRequest("2024-03-01", "2024-03-10") },
			errIs: errs.ErrConflictInput,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.seed {
				s.seed(func(*builder.ReservationBuilder) {})
			}
			guest := uuid.New()
			if tc.guestID != nil {
				guest = tc.guestID(s)
			}
			before := s.uow.ReservationCount()
			s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(0)

			_, err := s.commands.CreateReservation(context.Background(), guest, tc.req(s))
			s.ErrorIs(err, tc.errIs)
			s.Equal(before, s.uow.ReservationCount())
		})
	}

	s.Run("exclusion constraint hit is a booking conflict", func() {
		s.SetupTest()
		s.uow.FailOn = func(op string) error {
			if op == "Reservations.Insert" {
				return infra.WrapRepoErr("failed to insert reservation", nil, infra.KindExclusionViolated)
			}
			return nil
		}

		_, err := s.commands.CreateReservation(context.Background(), s.guestID, s.createRequest("2024-03-01", "2024-03-02"))
		s.ErrorIs(err, errs.ErrBookingConflict)
	})

	s.Run("storage failure rolls back every write", func() {
		s.SetupTest()
		s.uow.FailOn = func(op string) error {
			if op == "Reservations.Insert" {
				return infra.WrapRepoErr("failed to insert reservation", errors.New("connection reset"))
			}
			return nil
		}

		_, err := s.commands.CreateReservation(context.Background(), s.guestID, s.createRequest("2024-03-01", "2024-03-02"))
		s.ErrorIs(err, errs.ErrPersistence)
		s.False(s.uow.HasAccount(s.guestID))
		s.Equal(0, s.uow.ReservationCount())
		s.Equal(0, s.uow.Commits())
	})
}

func (s *ReservationCommandsTestSuite) TestCreateReservation_ConcurrentOverlap() {
	s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(1)

	const attempts = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []error
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.commands.CreateReservation(context.Background(), uuid.New(), s.createRequest("2024-03-01", "2024-03-04"))
			mu.Lock()
			results = append(results, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, errs.ErrBookingConflict):
			conflicts++
		}
	}
	s.Equal(1, ok)
	s.Equal(attempts-1, conflicts)
	s.Equal(1, s.uow.ReservationCount())
}

// ================================================================================
// DecideReservation
// ================================================================================

func (s *ReservationCommandsTestSuite) TestDecideReservation() {
	s.Run("accept moves to AWAITING_REVIEW and counts the booking", func() {
		s.SetupTest()
		r := s.seed(func(*builder.ReservationBuilder) {})
		s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(1)
		s.clock.Add(48 * time.Hour)

		actual, err := s.commands.DecideReservation(context.Background(), s.dwelling.OwnerID(), r.ID(), commands.DecideReservationRequest{Action: "ACCEPT"})
		s.Require().NoError(err)
		s.Equal(reservation.StatusAwaitingReview, actual.Status())
		s.Equal(now.Add(48*time.Hour), actual.UpdatedAt())
		s.Equal(r.CreatedAt(), actual.CreatedAt())

		d, _ := s.uow.Dwelling(s.dwelling.ID())
		s.Equal(1, d.BookingCount())
		stored, _ := s.uow.Reservation(r.ID())
		s.Equal(reservation.StatusAwaitingReview, stored.Status())
	})

	s.Run("reject keeps the reason and leaves the count", func() {
		s.SetupTest()
		r := s.seed(func(*builder.ReservationBuilder) {})
		s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(1)

		actual, err := s.commands.DecideReservation(context.Background(), s.dwelling.OwnerID(), r.ID(),
			commands.DecideReservationRequest{Action: "REJECT", Reason: "  dates blocked for repairs "})
		s.Require().NoError(err)
		s.Equal(reservation.StatusRejected, actual.Status())
		s.Equal("dates blocked for repairs", actual.DecisionReason())

		d, _ := s.uow.Dwelling(s.dwelling.ID())
		s.Equal(0, d.BookingCount())
	})

	testCases := []struct {
		name   string
		status reservation.Status
		actor  func(s *ReservationCommandsTestSuite) uuid.UUID
		req    commands.DecideReservationRequest
		errIs  error
		state  string
	}{
		{
			name:   "only the host may decide",
			status: reservation.StatusAwaitingDecision,
			actor:  func(s *ReservationCommandsTestSuite) uuid.UUID { return s.guestID },
			req:    commands.DecideReservationRequest{Action: "ACCEPT"},
			errIs:  errs.ErrForbidden,
		},
		{
			name:   "ownership is checked before the status",
			status: reservation.StatusCompleted,
			actor:  func(s *ReservationCommandsTestSuite) uuid.UUID { return uuid.New() },
			req:    commands.DecideReservationRequest{Action: "ACCEPT"},
			errIs:  errs.ErrForbidden,
		},
		{
			name:   "already decided",
			status: reservation.StatusAwaitingReview,
			actor:  func(s *ReservationCommandsTestSuite) uuid.UUID { return s.dwelling.OwnerID() },
			req:    commands.DecideReservationRequest{Action: "REJECT", Reason: "changed my mind"},
			errIs:  errs.ErrInvalidTransition,
			state:  "AWAITING_REVIEW",
		},
		{
			name:   "reject needs a reason",
			status: reservation.StatusAwaitingDecision,
			actor:  func(s *ReservationCommandsTestSuite) uuid.UUID { return s.dwelling.OwnerID() },
			req:    commands.DecideReservationRequest{Action: "REJECT", Reason: "   "},
			errIs:  errs.ErrInvalidInput,
		},
		{
			name:   "unknown action",
			status: reservation.StatusAwaitingDecision,
			actor:  func(s *ReservationCommandsTestSuite) uuid.UUID { return s.dwelling.OwnerID() },
			req:    commands.DecideReservationRequest{Action: "MAYBE"},
			errIs:  errs.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			r := s.seed(func(b *builder.ReservationBuilder) { b.Status = tc.status })
			s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(0)

			_, err := s.commands.DecideReservation(context.Background(), tc.actor(s), r.ID(), tc.req)
			s.ErrorIs(err, tc.errIs)
			if tc.state != "" {
				detail, ok := errs.Detail(err)
				s.Require().True(ok)
				s.Equal(tc.state, detail.Status)
			}

			stored, _ := s.uow.Reservation(r.ID())
			s.Equal(tc.status, stored.Status())
		})
	}

	s.Run("unknown reservation", func() {
		s.SetupTest()
		_, err := s.commands.DecideReservation(context.Background(), s.dwelling.OwnerID(), uuid.New(), commands.DecideReservationRequest{Action: "ACCEPT"})
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("concurrent status change is an invalid transition", func() {
		s.SetupTest()
		r := s.seed(func(*builder.ReservationBuilder) {})
		s.uow.FailOn = func(op string) error {
			if op == "Reservations.UpdateStatus" {
				return infra.WrapRepoErr("failed to update reservation status", nil, infra.KindStaleWrite)
			}
			return nil
		}

		_, err := s.commands.DecideReservation(context.Background(), s.dwelling.OwnerID(), r.ID(), commands.DecideReservationRequest{Action: "ACCEPT"})
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("failed count update rolls back the decision", func() {
		s.SetupTest()
		r := s.seed(func(*builder.ReservationBuilder) {})
		s.uow.FailOn = func(op string) error {
			if op == "Dwellings.IncrementBookingCount" {
				return infra.WrapRepoErr("failed to increment booking count", errors.New("statement timeout"))
			}
			return nil
		}

		_, err := s.commands.DecideReservation(context.Background(), s.dwelling.OwnerID(), r.ID(), commands.DecideReservationRequest{Action: "ACCEPT"})
		s.ErrorIs(err, errs.ErrPersistence)
		stored, _ := s.uow.Reservation(r.ID())
		s.Equal(reservation.StatusAwaitingDecision, stored.Status())
	})
}

// ================================================================================
// CommentReservation
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCommentReservation() {
	s.Run("guest comment completes the stay", func() {
		s.SetupTest()
		r := s.seed(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusAwaitingReview })
		s.invalidator.EXPECT().InvalidateSearch(gomock.Any()).Times(0)

		actual, err := s.commands.CommentReservation(context.Background(), s.guestID, r.ID(), " lovely view ")
		s.Require().NoError(err)
		s.Equal(reservation.StatusCompleted, actual.Status())
		s.Equal("lovely view", actual.CommentText())

		stored, _ := s.uow.Reservation(r.ID())
		s.Equal(reservation.StatusCompleted, stored.Status())
	})

	testCases := []struct {
		name   string
		status reservation.Status
		host   bool
		text   string
		errIs  error
	}{
		{name: "host cannot comment", status: reservation.StatusAwaitingReview, host: true, text: "nice guest", errIs: errs.ErrForbidden},
		{name: "guest check comes before status", status: reservation.StatusAwaitingDecision, host: true, text: "hi", errIs: errs.ErrForbidden},
		{name: "not yet accepted", status: reservation.StatusAwaitingDecision, text: "great", errIs: errs.ErrInvalidTransition},
		{name: "already completed", status: reservation.StatusCompleted, text: "again", errIs: errs.ErrInvalidTransition},
		{name: "rejected stays take no comment", status: reservation.StatusRejected, text: "why", errIs: errs.ErrInvalidTransition},
		{name: "blank comment", status: reservation.StatusAwaitingReview, text: "  ", errIs: errs.ErrInvalidInput},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			r := s.seed(func(b *builder.ReservationBuilder) { b.Status = tc.status })
			actor := s.guestID
			if tc.host {
				actor = s.dwelling.OwnerID()
			}

			_, err := s.commands.CommentReservation(context.Background(), actor, r.ID(), tc.text)
			s.ErrorIs(err, tc.errIs)
			stored, _ := s.uow.Reservation(r.ID())
			s.Equal(tc.status, stored.Status())
		})
	}
}
