// Package postgres implements the remote ledger store on PostgreSQL:
// a "ledgers" collection with one JSON document per username, accessed
// by point lookup and upsert only.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/propledger/internal/common"
	"github.com/dmitrijs2005/propledger/internal/storage/postgres/migrations"
)

// Backend is a storage.Backend persisting documents in the ledgers table.
type Backend struct {
	db *sql.DB
}

// New opens the database, probes connectivity and runs migrations.
// The probe is retried a few times with a short delay so that a remote
// that is just starting up (e.g. alongside this process in compose)
// still counts as configured; after that, any failure is reported and
// the caller is expected to run in local-only mode.
func New(ctx context.Context, dsn string) (*Backend, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	err = retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			return db.PingContext(pingCtx)
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", common.ErrRemoteUnavailable, err)
	}

	b := &Backend{db: db}
	if err := b.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrations: %v", common.ErrRemoteUnavailable, err)
	}
	return b, nil
}

func (b *Backend) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, b.db, ".")
}

// Load performs a point lookup by username.
func (b *Backend) Load(ctx context.Context, username string) ([]byte, error) {
	query := `SELECT data FROM ledgers WHERE username = $1`

	var data []byte
	err := b.db.QueryRowContext(ctx, query, username).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRemoteUnavailable, err)
	}
	return data, nil
}

// Save upserts the user's document: insert if absent, else replace.
func (b *Backend) Save(ctx context.Context, username string, doc []byte) error {
	query := `INSERT INTO ledgers (username, data, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (username) DO UPDATE SET data = excluded.data, updated_at = now()
		 `

	if _, err := b.db.ExecContext(ctx, query, username, doc); err != nil {
		return fmt.Errorf("%w: %v", common.ErrRemoteUnavailable, err)
	}
	return nil
}

func (b *Backend) Close() error {
	return b.db.Close()
}
