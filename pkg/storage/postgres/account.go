package postgres

import (
	"context"
	"errors"
	"fmt"
	"signup/pkg/domain"
	"signup/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	accountsTable = "accounts"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// StoreAccount inserts a new account. Unique violations on username or email
// are reported as storage.ErrDuplicateAccount.
func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var row PgAccount
	row.FromDomain(account)

	var stored PgAccount
	if _, err := p.Builder.Insert(accountsTable).
		Rows(row).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store account: %w", storage.ErrDuplicateAccount)
		}

		return nil, fmt.Errorf("could not store account into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MarkAccountWelcomed stamps welcomed_at once; later calls keep the first value.
func (p *PgSQL) MarkAccountWelcomed(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"welcomed_at": goqu.L("COALESCE(welcomed_at, CURRENT_TIMESTAMP)"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark account welcomed in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
