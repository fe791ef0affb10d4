package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations is an ordered list of idempotent DDL statements.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS public.users (
		id    BIGSERIAL PRIMARY KEY,
		name  VARCHAR(255) NOT NULL,
		email VARCHAR(512) NOT NULL,
		CONSTRAINT uq_users_email UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS public.requests (
		id           BIGSERIAL PRIMARY KEY,
		description  TEXT        NOT NULL,
		requester_id BIGINT      NOT NULL REFERENCES public.users (id),
		created      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS public.items (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT         NOT NULL,
		available   BOOLEAN      NOT NULL,
		owner_id    BIGINT       NOT NULL REFERENCES public.users (id),
		request_id  BIGINT       REFERENCES public.requests (id)
	)`,
	`CREATE TABLE IF NOT EXISTS public.bookings (
		id         BIGSERIAL PRIMARY KEY,
		start_date TIMESTAMPTZ NOT NULL,
		end_date   TIMESTAMPTZ NOT NULL,
		item_id    BIGINT      NOT NULL REFERENCES public.items (id),
		booker_id  BIGINT      NOT NULL REFERENCES public.users (id),
		status     VARCHAR(16) NOT NULL,
		CONSTRAINT ck_bookings_range CHECK (start_date < end_date),
		CONSTRAINT ck_bookings_status CHECK (status IN ('WAITING', 'APPROVED', 'REJECTED'))
	)`,
	`CREATE TABLE IF NOT EXISTS public.comments (
		id        BIGSERIAL PRIMARY KEY,
		text      TEXT        NOT NULL,
		item_id   BIGINT      NOT NULL REFERENCES public.items (id),
		author_id BIGINT      NOT NULL REFERENCES public.users (id),
		created   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_booker_start ON public.bookings (booker_id, start_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_item_start ON public.bookings (item_id, start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_items_owner ON public.items (owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_request ON public.items (request_id)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_requester_created ON public.requests (requester_id, created DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_item ON public.comments (item_id)`,
}

// Migrate applies all migrations in order inside one transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration failed: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for i, m := range migrations {
		if _, err := tx.Exec(ctx, m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration failed: %w", err)
	}
	return nil
}
