// Package postgres implements pkg/storage on top of PostgreSQL. Connections
// come from a pgx pool that is also exposed as a *sql.DB so goqu, goose and
// river's database/sql driver can share it.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"signup/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/riverqueue/river"
)

const dialect = "postgres"

// Options configure the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed verbatim as the sslmode connection parameter.
	SslMode string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is used as the pool's minimum connection count.
	MaxIdleConnections int
}

// DSN renders the options as a libpq keyword/value connection string.
func (o Options) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		o.Host, o.Port, o.Username, o.Database, o.Password, o.SslMode)
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the part of goqu shared by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage and storage.TxStorage.
type PgSQL struct {
	// DB is a *sql.DB for the root handle and a *sql.Tx inside a transaction.
	DB DB
	// Builder builds queries bound to DB.
	Builder Builder
	// Pool is only set on the root handle.
	Pool *pgxpool.Pool

	jobs *river.Client[*sql.Tx]
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// New opens a pgx pool for options.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	jobs, err := newJobClient(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()

		return nil, err
	}

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
		jobs:    jobs,
	}, nil
}

// Ping checks that the database is reachable. Only the root handle can ping.
func (p *PgSQL) Ping(ctx context.Context) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping pg: %w", err)
	}

	return nil
}

// Close closes the *sql.DB wrapper and the pool. It is a no-op on
// transactional handles.
func (p *PgSQL) Close() error {
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

func (p *PgSQL) Commit() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction. Nested transactions are not supported and
// yield storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
		jobs:    p.jobs,
	}, nil
}

func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}
