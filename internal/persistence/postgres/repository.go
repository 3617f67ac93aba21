// Package postgres provides PostgreSQL-backed persistence for attendance
// records.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/domain"
)

// Repository implements domain.Repository over a shared connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert stores a new attendance record and returns it with the assigned id.
func (r *Repository) Insert(ctx context.Context, rec domain.Record) (domain.Record, error) {
	const query = `INSERT INTO attendance (user_id, username, date, jalali_date, day, check_in)
        VALUES ($1, $2, $3, $4, $5, $6::time)
        RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		rec.UserID, rec.Username, rec.Date, rec.JalaliDate, rec.Day, rec.CheckIn,
	).Scan(&rec.ID)
	if err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// HasOpen reports whether the user has a record without a checkout for date.
func (r *Repository) HasOpen(ctx context.Context, userID int64, date time.Time) (bool, error) {
	const query = `SELECT EXISTS (
        SELECT 1 FROM attendance
        WHERE user_id = $1 AND date = $2 AND check_out IS NULL)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, date).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CloseOpen sets check_out on the most recent open record for (userID, date).
// Zero rows affected means no open record existed; that is not an error here.
func (r *Repository) CloseOpen(ctx context.Context, userID int64, date time.Time, checkOut string) (int64, error) {
	const query = `UPDATE attendance SET check_out = $1::time
        WHERE id = (
            SELECT id FROM attendance
            WHERE user_id = $2 AND date = $3 AND check_out IS NULL
            ORDER BY id DESC
            LIMIT 1)`

	tag, err := r.pool.Exec(ctx, query, checkOut, userID, date)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListMonth returns the user's records whose date falls in the given month
// and year, oldest first.
func (r *Repository) ListMonth(ctx context.Context, userID int64, year int, month time.Month) ([]domain.Record, error) {
	const query = `SELECT id, user_id, username, date, jalali_date, day, check_in::text, check_out::text
        FROM attendance
        WHERE user_id = $1
          AND EXTRACT(MONTH FROM date) = $2
          AND EXTRACT(YEAR FROM date) = $3
        ORDER BY date, check_in`

	rows, err := r.pool.Query(ctx, query, userID, int(month), year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Username, &rec.Date,
			&rec.JalaliDate, &rec.Day, &rec.CheckIn, &rec.CheckOut,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
