// Package dbtest provides a Postgres-backed pool for repository tests.
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/db"
)

// Open connects to TEST_DB_DSN, applies migrations and empties every table.
// The test is skipped when TEST_DB_DSN is not set.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	// Attempt to load .env from the repository root
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Unable to connect to database")
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	Truncate(t, pool)

	return pool
}

// Truncate removes all rows and resets identity counters.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"TRUNCATE TABLE public.comments, public.bookings, public.items, public.requests, public.users RESTART IDENTITY CASCADE")
	require.NoError(t, err, "Failed to clean tables")
}
