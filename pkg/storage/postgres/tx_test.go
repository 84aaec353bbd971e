package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"signup/pkg/domain"
	"signup/pkg/storage"
	"signup/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countAccounts(t *testing.T, db *sql.DB, username string) int {
	t.Helper()
	var c int
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM accounts WHERE username = $1`, username)
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_NestedFails(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.Ping(ctx), storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsAccount(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.StoreAccount(ctx, domain.Account{Username: "committed", Email: "c@example.com", Password: "h"})
	require.NoError(t, err)
	require.Equal(t, 0, countAccounts(t, pg.DB.(*sql.DB), "committed"))

	require.NoError(t, tx.Commit())
	require.Equal(t, 1, countAccounts(t, pg.DB.(*sql.DB), "committed"))
}

func TestPgSQL_Rollback_DiscardsAccount(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.StoreAccount(ctx, domain.Account{Username: "discarded", Email: "d@example.com", Password: "h"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Equal(t, 0, countAccounts(t, pg.DB.(*sql.DB), "discarded"))
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	db := pg.DB.(*sql.DB)

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreAccount(ctx, domain.Account{Username: "ok", Email: "ok@example.com", Password: "h"})

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countAccounts(t, db, "ok"))

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreAccount(ctx, domain.Account{Username: "rolled", Email: "r@example.com", Password: "h"})

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countAccounts(t, db, "rolled"))
}
