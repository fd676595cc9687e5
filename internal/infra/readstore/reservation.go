package readstore

import (
	"context"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationViewSelect = `
	SELECT r.id, r.dwelling_id, d.title, d.owner_id, r.guest_id, r.check_in, r.check_out,
	       r.nights, r.nightly_rate, r.total_amount, r.status, r.decision_reason, r.comment,
	       r.created_at, r.updated_at
	FROM reservations r
	JOIN dwellings d ON d.id = r.dwelling_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.ReservationView, error) {
	q := reservationViewSelect + `
		WHERE r.guest_id = @guest_id
		ORDER BY r.created_at DESC, r.id`

	return s.list(ctx, "failed to list reservations by guest", q, pgx.NamedArgs{"guest_id": guestID})
}

func (s *ReservationReadStore) ListByDwellings(ctx context.Context, dwellingIDs []uuid.UUID) ([]*queries.ReservationView, error) {
	q := reservationViewSelect + `
		WHERE r.dwelling_id = ANY(@dwelling_ids)
		ORDER BY r.created_at DESC, r.id`

	return s.list(ctx, "failed to list reservations by dwellings", q, pgx.NamedArgs{"dwelling_ids": dwellingIDs})
}

// ListBlockingWithin returns blocking reservations on dwellingIDs that can touch the window.
// The exact overlap test stays in the availability package.
func (s *ReservationReadStore) ListBlockingWithin(ctx context.Context, dwellingIDs []uuid.UUID, window availability.Bounds) ([]availability.Booking, error) {
	const q = `
		SELECT dwelling_id, check_in, check_out, status
		FROM reservations
		WHERE dwelling_id = ANY(@dwelling_ids)
		  AND status = ANY(@statuses)
		  AND (@check_in::date IS NULL OR check_out > @check_in)
		  AND (@check_out::date IS NULL OR check_in < @check_out)`

	blocking := reservation.BlockingStatuses()
	statuses := make([]string, len(blocking))
	for i, st := range blocking {
		statuses[i] = st.String()
	}

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{
		"dwelling_ids": dwellingIDs,
		"statuses":     statuses,
		"check_in":     pgconv.DatePtrToPgtype(window.CheckIn),
		"check_out":    pgconv.DatePtrToPgtype(window.CheckOut),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking reservations", err)
	}
	defer rows.Close()

	bookings, err := repository.ScanBookings(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan blocking reservations", err)
	}
	return bookings, nil
}

func (s *ReservationReadStore) list(ctx context.Context, msg, q string, args pgx.NamedArgs) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	views := []*queries.ReservationView{}
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v                    queries.ReservationView
		checkIn, checkOut    pgtype.Date
		status               string
		reason, comment      pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&v.ID, &v.DwellingID, &v.DwellingTitle, &v.HostID, &v.GuestID, &checkIn, &checkOut,
		&v.Nights, &v.NightlyRate, &v.TotalAmount, &status, &reason, &comment,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	st, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	v.Status = st
	v.CheckIn = pgconv.DateFromPgtype(checkIn)
	v.CheckOut = pgconv.DateFromPgtype(checkOut)
	v.DecisionReason = pgconv.StringPtrFromPgtype(reason)
	v.Comment = pgconv.StringPtrFromPgtype(comment)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
