package repository

import (
	"context"

	"staybook/internal/domain/dwelling"
	"staybook/internal/domain/money"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type DwellingRepository struct {
	db db.DBTX
}

func NewDwellingRepository(db db.DBTX) *DwellingRepository {
	return &DwellingRepository{db: db}
}

func (r *DwellingRepository) Create(ctx context.Context, d *dwelling.Dwelling) error {
	const q = `
		INSERT INTO dwellings (
			id, owner_id, area_id, title, address, nightly_rate, deposit,
			room_count, capacity, beds, min_nights, max_nights, booking_count,
			created_at, updated_at
		) VALUES (
			@id, @owner_id, @area_id, @title, @address, @nightly_rate, @deposit,
			@room_count, @capacity, @beds, @min_nights, @max_nights, @booking_count,
			@created_at, @updated_at
		)`

	det := d.Details()
	args := pgx.NamedArgs{
		"id":            d.ID(),
		"owner_id":      d.OwnerID(),
		"area_id":       det.AreaID,
		"title":         det.Title,
		"address":       det.Address,
		"nightly_rate":  det.NightlyRate.Minor(),
		"deposit":       det.Deposit.Minor(),
		"room_count":    det.RoomCount,
		"capacity":      det.Capacity,
		"beds":          det.Beds,
		"min_nights":    det.MinNights,
		"max_nights":    det.MaxNights,
		"booking_count": d.BookingCount(),
		"created_at":    pgconv.TimeToPgtype(d.CreatedAt()),
		"updated_at":    pgconv.TimeToPgtype(d.UpdatedAt()),
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return infra.WrapRepoErr("failed to create dwelling", err)
	}
	return nil
}

func (r *DwellingRepository) LockByID(ctx context.Context, id uuid.UUID) (*dwelling.Dwelling, error) {
	const q = `
		SELECT id, owner_id, area_id, title, address, nightly_rate, deposit,
		       room_count, capacity, beds, min_nights, max_nights, booking_count,
		       created_at, updated_at
		FROM dwellings
		WHERE id = @id
		FOR UPDATE`

	var (
		d                    dwelling.Details
		dwellingID, ownerID  uuid.UUID
		rate, deposit        int64
		bookingCount         int
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&dwellingID, &ownerID, &d.AreaID, &d.Title, &d.Address, &rate, &deposit,
		&d.RoomCount, &d.Capacity, &d.Beds, &d.MinNights, &d.MaxNights, &bookingCount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dwelling not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock dwelling", err)
	}

	d.NightlyRate = money.Amount(rate)
	d.Deposit = money.Amount(deposit)
	return dwelling.ReconstructDwelling(
		dwellingID, ownerID, d, bookingCount,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *DwellingRepository) IncrementBookingCount(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE dwellings
		SET booking_count = booking_count + 1, updated_at = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return infra.WrapRepoErr("failed to increment booking count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("dwelling not found", nil, infra.KindNotFound)
	}
	return nil
}
