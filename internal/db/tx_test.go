package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/db/dbtest"
)

func countUsers(t *testing.T, q db.Querier) int {
	t.Helper()
	var n int
	require.NoError(t, q.QueryRow(context.Background(), "SELECT count(*) FROM public.users").Scan(&n))
	return n
}

func TestWithinTxCommits(t *testing.T) {
	pool := dbtest.Open(t)
	tm := db.NewTxManager(pool)

	err := tm.WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := db.Conn(ctx, pool).Exec(ctx, "INSERT INTO public.users (name, email) VALUES ('a', 'a@x.io')")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countUsers(t, pool))
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	pool := dbtest.Open(t)
	tm := db.NewTxManager(pool)
	boom := errors.New("boom")

	err := tm.WithinTx(context.Background(), func(ctx context.Context) error {
		if _, err := db.Conn(ctx, pool).Exec(ctx, "INSERT INTO public.users (name, email) VALUES ('a', 'a@x.io')"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countUsers(t, pool))
}

func TestWithinTxJoinsOuterTransaction(t *testing.T) {
	pool := dbtest.Open(t)
	tm := db.NewTxManager(pool)

	err := tm.WithinTx(context.Background(), func(ctx context.Context) error {
		outer := db.Conn(ctx, pool)
		return tm.WithinTx(ctx, func(inner context.Context) error {
			assert.Same(t, outer, db.Conn(inner, pool))
			return nil
		})
	})
	require.NoError(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	pool := dbtest.Open(t)
	require.NoError(t, db.Migrate(context.Background(), pool))
}
