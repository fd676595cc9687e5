package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const dwellingListColumns = `
	d.id, d.owner_id, d.area_id, a.name, d.title, d.address, d.nightly_rate,
	d.room_count, d.capacity, d.booking_count, d.created_at`

type DwellingReadStore struct {
	db db.DBTX
}

func NewDwellingReadStore(db db.DBTX) *DwellingReadStore {
	return &DwellingReadStore{db: db}
}

func (s *DwellingReadStore) ListForSearch(ctx context.Context, areaID *int) ([]queries.DwellingListItem, error) {
	q := `SELECT` + dwellingListColumns + `
		FROM dwellings d
		JOIN areas a ON a.id = d.area_id
		WHERE (@area_id::int IS NULL OR d.area_id = @area_id)
		ORDER BY d.created_at DESC, d.id`

	return s.list(ctx, "failed to list dwellings for search", q, pgx.NamedArgs{"area_id": areaID})
}

func (s *DwellingReadStore) ListNewest(ctx context.Context, limit int) ([]queries.DwellingListItem, error) {
	q := `SELECT` + dwellingListColumns + `
		FROM dwellings d
		JOIN areas a ON a.id = d.area_id
		ORDER BY d.created_at DESC, d.id
		LIMIT @limit`

	return s.list(ctx, "failed to list newest dwellings", q, pgx.NamedArgs{"limit": limit})
}

func (s *DwellingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]queries.DwellingListItem, error) {
	q := `SELECT` + dwellingListColumns + `
		FROM dwellings d
		JOIN areas a ON a.id = d.area_id
		WHERE d.owner_id = @owner_id
		ORDER BY d.created_at DESC, d.id`

	return s.list(ctx, "failed to list dwellings by owner", q, pgx.NamedArgs{"owner_id": ownerID})
}

func (s *DwellingReadStore) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT id FROM dwellings WHERE owner_id = @owner_id`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{"owner_id": ownerID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dwelling ids by owner", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan dwelling ids", err)
	}
	return ids, nil
}

func (s *DwellingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DwellingDetailView, error) {
	q := `SELECT` + dwellingListColumns + `,
		d.deposit, d.beds, d.min_nights, d.max_nights, d.updated_at
		FROM dwellings d
		JOIN areas a ON a.id = d.area_id
		WHERE d.id = @id`

	var (
		view      queries.DwellingDetailView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&view.ID, &view.OwnerID, &view.AreaID, &view.AreaName, &view.Title, &view.Address, &view.NightlyRate,
		&view.RoomCount, &view.Capacity, &view.BookingCount, &createdAt,
		&view.Deposit, &view.Beds, &view.MinNights, &view.MaxNights, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dwelling not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dwelling by ID", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (s *DwellingReadStore) list(ctx context.Context, msg, q string, args pgx.NamedArgs) ([]queries.DwellingListItem, error) {
	rows, err := s.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	items := []queries.DwellingListItem{}
	for rows.Next() {
		var (
			it        queries.DwellingListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&it.ID, &it.OwnerID, &it.AreaID, &it.AreaName, &it.Title, &it.Address, &it.NightlyRate,
			&it.RoomCount, &it.Capacity, &it.BookingCount, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		it.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return items, nil
}
