package repository

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository records accounts authenticated by the access gate.
type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(db db.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Ensure(ctx context.Context, accountID uuid.UUID) error {
	const q = `INSERT INTO accounts (id) VALUES (@id) ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": accountID}); err != nil {
		return infra.WrapRepoErr("failed to ensure account", err)
	}
	return nil
}
