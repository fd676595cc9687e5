package commands

//go:generate mockgen -source=$GOFILE -destination=../../testutil/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, guestID uuid.UUID, req CreateReservationRequest) (*reservation.Reservation, error)
	DecideReservation(ctx context.Context, actorID, reservationID uuid.UUID, req DecideReservationRequest) (*reservation.Reservation, error)
	CommentReservation(ctx context.Context, actorID, reservationID uuid.UUID, text string) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator SearchInvalidator
	clock       clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, invalidator SearchInvalidator, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, invalidator: invalidator, clock: clk}
}

// CreateReservation books a stay. The dwelling row lock serializes creates on the
// same dwelling, so the availability check and the insert see the same calendar.
func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, guestID uuid.UUID, req CreateReservationRequest) (*reservation.Reservation, error) {
	stay, err := reservation.NewStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, derr := tx.Dwellings().LockByID(ctx, req.DwellingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.DwellingNotFound(req.DwellingID)
			}
			return derr
		}

		r, derr := reservation.NewReservation(d.ReservationSpec(), guestID, stay, uc.clock.Now())
		if derr != nil {
			return derr
		}

		existing, derr := tx.Reservations().ListForDwelling(ctx, d.ID(), reservation.BlockingStatuses())
		if derr != nil {
			return derr
		}
		if availability.Resolve(d.ID(), stay, existing) == availability.Conflict {
			return errs.BookingConflict(d.ID())
		}

		if derr = tx.Accounts().Ensure(ctx, guestID); derr != nil {
			return derr
		}
		if derr = tx.Reservations().Insert(ctx, r); derr != nil {
			if infra.IsKind(derr, infra.KindExclusionViolated) {
				return errs.BookingConflict(d.ID())
			}
			return derr
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, errs.Classify(err)
	}

	uc.afterCommit(ctx, "create", created.ID())
	return created, nil
}

// DecideReservation applies the host's ACCEPT or REJECT to an AWAITING_DECISION
// reservation. Ownership is checked before the status.
func (uc *reservationUseCaseImpl) DecideReservation(ctx context.Context, actorID, reservationID uuid.UUID, req DecideReservationRequest) (*reservation.Reservation, error) {
	action, err := reservation.ParseAction(req.Action)
	if err != nil {
		return nil, err
	}

	var decided *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := uc.lockReservation(ctx, tx, reservationID)
		if derr != nil {
			return derr
		}

		d, derr := tx.Dwellings().LockByID(ctx, r.DwellingID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.DwellingNotFound(r.DwellingID())
			}
			return derr
		}
		if !d.IsOwnedBy(actorID) {
			return errs.Forbidden(reservationID, "only the host of the dwelling can decide")
		}

		from := r.Status()
		if derr = r.Decide(action, req.Reason, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = uc.updateStatus(ctx, tx, r, from); derr != nil {
			return derr
		}
		if action == reservation.ActionAccept {
			if derr = tx.Dwellings().IncrementBookingCount(ctx, d.ID()); derr != nil {
				return derr
			}
		}
		decided = r
		return nil
	})
	if err != nil {
		return nil, errs.Classify(err)
	}

	// Accept changes booking counts and reject frees dates; both move search results.
	uc.afterCommit(ctx, "decide", decided.ID())
	return decided, nil
}

// CommentReservation completes an AWAITING_REVIEW reservation with the guest's comment.
func (uc *reservationUseCaseImpl) CommentReservation(ctx context.Context, actorID, reservationID uuid.UUID, text string) (*reservation.Reservation, error) {
	var commented *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := uc.lockReservation(ctx, tx, reservationID)
		if derr != nil {
			return derr
		}
		if !r.IsGuest(actorID) {
			return errs.Forbidden(reservationID, "only the guest can comment")
		}

		from := r.Status()
		if derr = r.Comment(text, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = uc.updateStatus(ctx, tx, r, from); derr != nil {
			return derr
		}
		commented = r
		return nil
	})
	if err != nil {
		return nil, errs.Classify(err)
	}
	return commented, nil
}

func (uc *reservationUseCaseImpl) lockReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := tx.Reservations().LockByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ReservationNotFound(id)
		}
		return nil, err
	}
	return r, nil
}

func (uc *reservationUseCaseImpl) updateStatus(ctx context.Context, tx shared.Tx, r *reservation.Reservation, from reservation.Status) error {
	err := tx.Reservations().UpdateStatus(ctx, r, from)
	if infra.IsKind(err, infra.KindStaleWrite) {
		return errs.InvalidTransition(r.ID(), from.String(), "reservation changed concurrently")
	}
	return err
}

func (uc *reservationUseCaseImpl) afterCommit(ctx context.Context, op string, id uuid.UUID) {
	slog.Debug("reservation committed", "op", op, "reservation_id", id.String())
	uc.invalidator.InvalidateSearch(context.WithoutCancel(ctx))
}
