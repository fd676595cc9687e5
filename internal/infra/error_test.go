//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"staybook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, kind: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), kind: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, kind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, kind: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}, kind: infra.KindExclusionViolated},
		{name: "other postgres error", err: &pgconn.PgError{Code: "57014"}, kind: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), kind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to write", tc.err)
			assert.True(t, infra.IsKind(err, tc.kind))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("stale", nil, infra.KindStaleWrite)
		assert.True(t, infra.IsKind(err, infra.KindStaleWrite))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("foreign errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	})
}
