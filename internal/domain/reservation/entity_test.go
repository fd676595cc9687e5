//go:build unit

package reservation_test

import (
	"errors"
	"testing"
	"time"

	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
	field  string
}

func TestNewReservation(t *testing.T) {
	t.Run("snapshots the nightly rate and prices the stay", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusAwaitingDecision, actual.Status())
		assert.Equal(t, 3, actual.Nights())
		assert.Equal(t, int64(10000), actual.NightlyRate().Minor())
		assert.Equal(t, int64(30000), actual.TotalAmount().Minor())
		assert.Empty(t, actual.DecisionReason())
		assert.Empty(t, actual.CommentText())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("guards", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "host books own dwelling",
				mutate: func(b *builder.ReservationBuilder) { b.GuestID = b.OwnerID },
				errIs:  errs.ErrForbidden,
			},
			{
				name:   "stay shorter than minimum",
				mutate: func(b *builder.ReservationBuilder) { b.MinNights = 4 },
				errIs:  errs.ErrConflictInput,
				field:  "check_out",
			},
			{
				name:   "stay equal to minimum",
				mutate: func(b *builder.ReservationBuilder) { b.MinNights = 3 },
			},
			{
				name:   "stay longer than maximum",
				mutate: func(b *builder.ReservationBuilder) { b.MaxNights = 2 },
				errIs:  errs.ErrConflictInput,
				field:  "check_out",
			},
			{
				name:   "zero maximum means unlimited",
				mutate: func(b *builder.ReservationBuilder) { b.CheckOut = b.CheckIn.AddDate(0, 2, 0); b.MaxNights = 0 },
			},
			{
				name:   "dwelling without rate",
				mutate: func(b *builder.ReservationBuilder) { b.NightlyRate = 0 },
				errIs:  errs.ErrInvalidInput,
				field:  "nightly_rate",
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder().With(tc.mutate)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				if tc.field != "" {
					detail, ok := errs.Detail(err)
					require.True(t, ok)
					assert.Equal(t, tc.field, detail.Field)
				}
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestReservationDecide(t *testing.T) {
	now := time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)

	t.Run("accept moves to awaiting review", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildReconstructed()

		require.NoError(t, r.Decide(reservation.ActionAccept, "", now))
		assert.Equal(t, reservation.StatusAwaitingReview, r.Status())
		assert.Empty(t, r.DecisionReason())
		assert.Equal(t, now, r.UpdatedAt())
	})

	t.Run("reject stores the reason", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildReconstructed()

		require.NoError(t, r.Decide(reservation.ActionReject, "x", now))
		assert.Equal(t, reservation.StatusRejected, r.Status())
		assert.Equal(t, "x", r.DecisionReason())
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildReconstructed()

		err := r.Decide(reservation.ActionReject, "   ", now)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
		assert.Equal(t, reservation.StatusAwaitingDecision, r.Status())
	})

	t.Run("any decision outside awaiting decision is an invalid transition", func(t *testing.T) {
		for _, status := range []reservation.Status{
			reservation.StatusAwaitingReview,
			reservation.StatusRejected,
			reservation.StatusCompleted,
		} {
			for _, action := range []reservation.Action{reservation.ActionAccept, reservation.ActionReject} {
				t.Run(status.String()+"/"+action.String(), func(t *testing.T) {
					r := builder.NewReservationBuilder().
						With(func(b *builder.ReservationBuilder) { b.Status = status }).
						BuildReconstructed()

					err := r.Decide(action, "reason", now)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
					detail, ok := errs.Detail(err)
					require.True(t, ok)
					assert.Equal(t, status.String(), detail.Status)
					assert.Equal(t, r.ID(), detail.EntityID)
					assert.Equal(t, status, r.Status())
				})
			}
		}
	})
}

func TestReservationComment(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	t.Run("completes an awaiting review reservation", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusAwaitingReview }).
			BuildReconstructed()

		require.NoError(t, r.Comment("  lovely stay ", now))
		assert.Equal(t, reservation.StatusCompleted, r.Status())
		assert.Equal(t, "lovely stay", r.CommentText())
	})

	t.Run("rejected reservations cannot be commented", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusRejected }).
			BuildReconstructed()

		assert.ErrorIs(t, r.Comment("nice", now), errs.ErrInvalidTransition)
		assert.Equal(t, reservation.StatusRejected, r.Status())
		assert.Empty(t, r.CommentText())
	})

	t.Run("pending reservations cannot be commented", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildReconstructed()

		assert.ErrorIs(t, r.Comment("nice", now), errs.ErrInvalidTransition)
	})

	t.Run("empty comment", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusAwaitingReview }).
			BuildReconstructed()

		assert.ErrorIs(t, r.Comment("", now), errs.ErrInvalidInput)
		assert.Equal(t, reservation.StatusAwaitingReview, r.Status())
	})
}
