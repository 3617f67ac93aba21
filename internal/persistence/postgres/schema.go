package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL drops and recreates the attendance table. Destructive on
// purpose: re-provisioning discards prior data. The partial unique index
// keeps at most one open record per user per day.
const schemaDDL = `
DROP TABLE IF EXISTS attendance;

CREATE TABLE attendance (
    id          SERIAL PRIMARY KEY,
    user_id     BIGINT NOT NULL,
    username    TEXT NOT NULL,
    date        DATE NOT NULL,
    jalali_date TEXT NOT NULL,
    day         INTEGER NOT NULL,
    check_in    TIME,
    check_out   TIME
);

CREATE UNIQUE INDEX attendance_one_open_per_day
    ON attendance (user_id, date)
    WHERE check_out IS NULL;
`

// EnsureDatabase creates the target database if it does not exist, using an
// administrative connection to the maintenance database.
func EnsureDatabase(ctx context.Context, adminDSN, name string) error {
	conn, err := pgx.Connect(ctx, adminDSN)
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot be parameterized.
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return fmt.Errorf("create database %q: %w", name, err)
	}
	return nil
}

// RecreateTable applies the attendance schema, dropping any prior table.
func RecreateTable(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("recreate attendance table: %w", err)
	}
	return nil
}
