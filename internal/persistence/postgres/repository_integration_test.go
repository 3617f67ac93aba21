//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/domain"
)

func startPostgres(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("attendance"),
		postgrescontainer.WithUsername("hr"),
		postgrescontainer.WithPassword("hr"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, RecreateTable(ctx, pool))
	return pool
}

func TestRecreateTableIsIdempotentInShape(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t, ctx)
	repo := NewRepository(pool)

	checkIn := "09:00:00"
	_, err := repo.Insert(ctx, domain.Record{
		UserID:     1,
		Username:   uuid.NewString(),
		Date:       time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
		JalaliDate: "1403/06/10",
		Day:        31,
		CheckIn:    &checkIn,
	})
	require.NoError(t, err)

	// Re-running the initializer leaves one empty table.
	require.NoError(t, RecreateTable(ctx, pool))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&count))
	require.Zero(t, count)
}

func TestCheckInCheckOutRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t, ctx)
	repo := NewRepository(pool)

	userID := int64(424242)
	date := time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)
	checkIn := "09:00:00"

	stored, err := repo.Insert(ctx, domain.Record{
		UserID:     userID,
		Username:   uuid.NewString(),
		Date:       date,
		JalaliDate: "1403/06/10",
		Day:        31,
		CheckIn:    &checkIn,
	})
	require.NoError(t, err)
	require.NotZero(t, stored.ID)

	open, err := repo.HasOpen(ctx, userID, date)
	require.NoError(t, err)
	require.True(t, open)

	affected, err := repo.CloseOpen(ctx, userID, date, "17:30:00")
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	open, err = repo.HasOpen(ctx, userID, date)
	require.NoError(t, err)
	require.False(t, open)

	// A checkout with nothing open affects zero rows and does not error.
	affected, err = repo.CloseOpen(ctx, userID, date, "18:00:00")
	require.NoError(t, err)
	require.Zero(t, affected)

	records, err := repo.ListMonth(ctx, userID, 2024, time.August)
	require.NoError(t, err)
	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, "1403/06/10", rec.JalaliDate)
	require.Equal(t, 31, rec.Day)
	require.NotNil(t, rec.CheckIn)
	require.Equal(t, "09:00:00", *rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	require.Equal(t, "17:30:00", *rec.CheckOut)
}

func TestOpenRecordUniquenessEnforced(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t, ctx)
	repo := NewRepository(pool)

	userID := int64(7)
	date := time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)
	checkIn := "09:00:00"
	rec := domain.Record{
		UserID:     userID,
		Username:   uuid.NewString(),
		Date:       date,
		JalaliDate: "1403/06/10",
		Day:        31,
		CheckIn:    &checkIn,
	}

	_, err := repo.Insert(ctx, rec)
	require.NoError(t, err)

	// A second open record for the same user and day violates the
	// partial unique index.
	_, err = repo.Insert(ctx, rec)
	require.Error(t, err)

	// After checkout a new session on the same day is allowed again.
	_, err = repo.CloseOpen(ctx, userID, date, "12:00:00")
	require.NoError(t, err)
	_, err = repo.Insert(ctx, rec)
	require.NoError(t, err)
}

func TestListMonthFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t, ctx)
	repo := NewRepository(pool)

	userID := int64(99)
	username := uuid.NewString()
	checkIn := "08:00:00"
	days := []int{12, 3, 25}
	for _, d := range days {
		_, err := repo.Insert(ctx, domain.Record{
			UserID:     userID,
			Username:   username,
			Date:       time.Date(2024, time.August, d, 0, 0, 0, 0, time.UTC),
			JalaliDate: "1403/06/01",
			Day:        d,
			CheckIn:    &checkIn,
		})
		require.NoError(t, err)
	}
	// Other users and other months must not leak in.
	_, err := repo.Insert(ctx, domain.Record{
		UserID:     userID + 1,
		Username:   uuid.NewString(),
		Date:       time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		JalaliDate: "1403/05/11",
		Day:        1,
		CheckIn:    &checkIn,
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.Record{
		UserID:     userID,
		Username:   username,
		Date:       time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
		JalaliDate: "1403/04/25",
		Day:        15,
		CheckIn:    &checkIn,
	})
	require.NoError(t, err)

	records, err := repo.ListMonth(ctx, userID, 2024, time.August)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, 3, records[0].Day)
	require.Equal(t, 12, records[1].Day)
	require.Equal(t, 25, records[2].Day)
}
