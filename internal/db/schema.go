package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies the schema idempotently on startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS account (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS profile (
			account_id INTEGER PRIMARY KEY REFERENCES account(id),
			exercises JSONB NOT NULL DEFAULT '[]',
			last_date TEXT NOT NULL,
			streak INTEGER NOT NULL DEFAULT 0,
			total_lifetime_count INTEGER NOT NULL DEFAULT 0,
			total_xp DOUBLE PRECISION NOT NULL DEFAULT 0,
			settings JSONB NOT NULL DEFAULT '{}',
			schema_version INTEGER NOT NULL DEFAULT 1
		);`,
		// one snapshot per account per calendar day, write-once
		`CREATE TABLE IF NOT EXISTS history (
			account_id INTEGER NOT NULL REFERENCES account(id),
			date TEXT NOT NULL,
			exercises JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (account_id, date)
		);`,
		`CREATE TABLE IF NOT EXISTS global_stat (
			account_id INTEGER NOT NULL REFERENCES account(id),
			exercise TEXT NOT NULL,
			display_name TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (account_id, exercise)
		);`,
		`CREATE TABLE IF NOT EXISTS friend (
			account_id INTEGER NOT NULL REFERENCES account(id),
			friend_id INTEGER NOT NULL REFERENCES account(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (account_id, friend_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_account_date ON history(account_id, date DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_global_stat_exercise_count ON global_stat(exercise, count DESC);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
