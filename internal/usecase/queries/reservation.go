package queries

//go:generate mockgen -source=$GOFILE -destination=../../testutil/mock/queries/reservation.go -package=queriesmock

import (
	"context"

	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	// ListReservationsForAccount lists reservations the account made (guest) or
	// received on its dwellings (host), newest first.
	ListReservationsForAccount(ctx context.Context, accountID uuid.UUID, role reservation.Role) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	dwellings    DwellingReadStore
}

func NewReservationQueries(reservations ReservationReadStore, dwellings DwellingReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, dwellings: dwellings}
}

func (q *reservationQueriesImpl) ListReservationsForAccount(ctx context.Context, accountID uuid.UUID, role reservation.Role) ([]*ReservationView, error) {
	var (
		views []*ReservationView
		err   error
	)

	switch role {
	case reservation.RoleHost:
		views, err = q.listForHost(ctx, accountID)
	case reservation.RoleGuest:
		views, err = q.reservations.ListByGuest(ctx, accountID)
	default:
		return nil, errs.InvalidInput("role", "role must be guest or host")
	}
	if err != nil {
		return nil, errs.Persistence(err)
	}
	if views == nil {
		views = []*ReservationView{}
	}
	return views, nil
}

func (q *reservationQueriesImpl) listForHost(ctx context.Context, hostID uuid.UUID) ([]*ReservationView, error) {
	ids, err := q.dwellings.ListIDsByOwner(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return q.reservations.ListByDwellings(ctx, ids)
}
