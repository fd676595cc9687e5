package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type AreaReadStore struct {
	db db.DBTX
}

func NewAreaReadStore(db db.DBTX) *AreaReadStore {
	return &AreaReadStore{db: db}
}

func (s *AreaReadStore) List(ctx context.Context) ([]queries.AreaView, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM areas ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list areas", err)
	}

	areas, err := pgx.CollectRows(rows, pgx.RowToStructByPos[queries.AreaView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan areas", err)
	}
	return areas, nil
}
