package config

import (
	"context"
	"fmt"
	"time"

	"marketai/internal/logging"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	connectInterval = 5 * time.Second
)

// ConnectDB opens a connection pool to dsn, retrying while the database
// comes up.
func ConnectDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	var err error
	for i := 0; i < connectAttempts; i++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.New(ctx, dsn)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				logging.Info().Msg("connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		logging.Warn().Err(err).
			Int("attempt", i+1).
			Int("max_attempts", connectAttempts).
			Dur("retry_in", connectInterval).
			Msg("failed to connect to database")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", connectAttempts, err)
}

// Execer runs a statement without returning rows.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('ADMIN', 'MARKETER', 'SALES')),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS request_logs (
		id BIGSERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		module TEXT NOT NULL CHECK (module IN ('campaign', 'pitch', 'lead')),
		inputs_json TEXT NOT NULL,
		output_json TEXT NOT NULL,
		model_used TEXT,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_request_logs_user_created ON request_logs(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_request_logs_module ON request_logs(module);
`

// AutoMigrate creates tables and indexes if they don't exist.
func AutoMigrate(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	logging.Info().Msg("AutoMigrate applied successfully")
	return nil
}
