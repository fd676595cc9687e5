package repository

import (
	"context"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/money"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) ListForDwelling(ctx context.Context, dwellingID uuid.UUID, statuses []reservation.Status) ([]availability.Booking, error) {
	const q = `
		SELECT dwelling_id, check_in, check_out, status
		FROM reservations
		WHERE dwelling_id = @dwelling_id AND status = ANY(@statuses)`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"dwelling_id": dwellingID,
		"statuses":    statusNames(statuses),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dwelling reservations", err)
	}
	defer rows.Close()

	bookings, err := ScanBookings(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan dwelling reservations", err)
	}
	return bookings, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	const q = `
		INSERT INTO reservations (
			id, dwelling_id, guest_id, check_in, check_out, nights,
			nightly_rate, total_amount, status, decision_reason, comment,
			created_at, updated_at
		) VALUES (
			@id, @dwelling_id, @guest_id, @check_in, @check_out, @nights,
			@nightly_rate, @total_amount, @status, @decision_reason, @comment,
			@created_at, @updated_at
		)`

	args := pgx.NamedArgs{
		"id":              res.ID(),
		"dwelling_id":     res.DwellingID(),
		"guest_id":        res.GuestID(),
		"check_in":        pgconv.DateToPgtype(res.Stay().CheckIn()),
		"check_out":       pgconv.DateToPgtype(res.Stay().CheckOut()),
		"nights":          res.Nights(),
		"nightly_rate":    res.NightlyRate().Minor(),
		"total_amount":    res.TotalAmount().Minor(),
		"status":          res.Status().String(),
		"decision_reason": pgconv.OptionalText(res.DecisionReason()),
		"comment":         pgconv.OptionalText(res.CommentText()),
		"created_at":      pgconv.TimeToPgtype(res.CreatedAt()),
		"updated_at":      pgconv.TimeToPgtype(res.UpdatedAt()),
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const q = `
		SELECT id, dwelling_id, guest_id, check_in, check_out, nightly_rate,
		       total_amount, status, decision_reason, comment, created_at, updated_at
		FROM reservations
		WHERE id = @id
		FOR UPDATE`

	var (
		resID, dwellingID, guestID uuid.UUID
		checkIn, checkOut          pgtype.Date
		rate, total                int64
		status                     string
		reason, comment            pgtype.Text
		createdAt, updatedAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&resID, &dwellingID, &guestID, &checkIn, &checkOut, &rate,
		&total, &status, &reason, &comment, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	stay, err := reservation.NewStay(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored stay is invalid", err, infra.KindDBFailure)
	}
	st, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored status is invalid", err, infra.KindDBFailure)
	}

	return reservation.ReconstructReservation(
		resID, dwellingID, guestID, stay,
		money.Amount(rate), money.Amount(total), st,
		pgconv.StringFromPgtype(reason), pgconv.StringFromPgtype(comment),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation, from reservation.Status) error {
	const q = `
		UPDATE reservations
		SET status = @status, decision_reason = @decision_reason, comment = @comment, updated_at = @updated_at
		WHERE id = @id AND status = @from`

	args := pgx.NamedArgs{
		"id":              res.ID(),
		"from":            from.String(),
		"status":          res.Status().String(),
		"decision_reason": pgconv.OptionalText(res.DecisionReason()),
		"comment":         pgconv.OptionalText(res.CommentText()),
		"updated_at":      pgconv.TimeToPgtype(res.UpdatedAt()),
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindStaleWrite)
	}
	return nil
}

// ScanBookings reads (dwelling_id, check_in, check_out, status) rows.
func ScanBookings(rows pgx.Rows) ([]availability.Booking, error) {
	var bookings []availability.Booking
	for rows.Next() {
		var (
			bk                availability.Booking
			checkIn, checkOut pgtype.Date
			status            string
		)
		if err := rows.Scan(&bk.DwellingID, &checkIn, &checkOut, &status); err != nil {
			return nil, err
		}
		st, err := reservation.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		bk.CheckIn = pgconv.DateFromPgtype(checkIn)
		bk.CheckOut = pgconv.DateFromPgtype(checkOut)
		bk.Status = st
		bookings = append(bookings, bk)
	}
	return bookings, rows.Err()
}

func statusNames(statuses []reservation.Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return names
}
