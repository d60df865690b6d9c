package postgres

import (
	"context"
	"fmt"

	"bizdash-core/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Pool is the subset of *pgxpool.Pool the repositories use; pgxmock
// satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// poolConfig maps database settings onto a pgx pool config. A zero
// lifetime keeps the pgx default.
func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	return poolCfg, nil
}

// NewPool creates a PostgreSQL connection pool using pgx.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("dbname", cfg.DBName).
		Int32("max_conns", cfg.MaxConns).
		Msg("PostgreSQL connection pool established")

	return pool, nil
}

const schemaSQL = `CREATE TABLE IF NOT EXISTS webhook_dispatch_logs (
	id                UUID PRIMARY KEY,
	webhook_type      TEXT        NOT NULL,
	url               TEXT        NOT NULL DEFAULT '',
	outcome           TEXT        NOT NULL,
	success           BOOLEAN     NOT NULL,
	status_code       INTEGER     NOT NULL DEFAULT 0,
	payload_size      BIGINT      NOT NULL DEFAULT 0,
	response_text     TEXT        NOT NULL DEFAULT '',
	attempt_count     INTEGER     NOT NULL DEFAULT 0,
	validation_passed BOOLEAN     NOT NULL DEFAULT FALSE,
	validation_errors TEXT[]      NOT NULL DEFAULT '{}',
	error_code        TEXT        NOT NULL DEFAULT '',
	error             TEXT        NOT NULL DEFAULT '',
	started_at        TIMESTAMPTZ NOT NULL,
	finished_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_webhook_dispatch_logs_type_finished
	ON webhook_dispatch_logs (webhook_type, finished_at DESC)`

// EnsureSchema creates the dispatch log table when it does not exist.
func EnsureSchema(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
