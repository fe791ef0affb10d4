package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/item"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	// LockByID is GetByID with a row lock held until the surrounding transaction ends.
	LockByID(ctx context.Context, id int64) (*Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	List(ctx context.Context, filter Filter) ([]*Booking, error)

	// HasFinishedBooking reports whether bookerID has any booking of itemID
	// that ended before now, whatever its status.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)

	item.BookingSummaries
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"i.id", "i.name", "i.description", "i.available", "i.owner_id", "i.request_id",
		"u.id", "u.name", "u.email",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b      Booking
		status string
	)
	if err := row.Scan(
		&b.ID, &b.Start, &b.End, &status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	); err != nil {
		return nil, err
	}

	st, err := ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("booking %d has status %q: %w", b.ID, status, err)
	}
	b.Status = st
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.Item.ID, b.Booker.ID, string(b.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return r.get(ctx, selectBookings().Where(squirrel.Eq{"b.id": id}))
}

func (r *pgxRepository) LockByID(ctx context.Context, id int64) (*Booking, error) {
	return r.get(ctx, selectBookings().Where(squirrel.Eq{"b.id": id}).Suffix("FOR UPDATE OF b"))
}

func (r *pgxRepository) get(ctx context.Context, query squirrel.SelectBuilder) (*Booking, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(db.Conn(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	query, args, err := psql.Update("public.bookings").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := db.Conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	query := selectBookings()

	if filter.BookerID != 0 {
		query = query.Where(squirrel.Eq{"b.booker_id": filter.BookerID})
	}
	if filter.OwnerID != 0 {
		query = query.Where(squirrel.Eq{"i.owner_id": filter.OwnerID})
	}

	switch filter.State {
	case StateCurrent:
		query = query.Where(squirrel.LtOrEq{"b.start_date": filter.Now}).
			Where(squirrel.GtOrEq{"b.end_date": filter.Now})
	case StatePast:
		query = query.Where(squirrel.Lt{"b.end_date": filter.Now})
	case StateFuture:
		query = query.Where(squirrel.Gt{"b.start_date": filter.Now})
	case StateWaiting, StateRejected, StateApproved:
		query = query.Where(squirrel.Eq{"b.status": string(filter.State)})
	}

	// id breaks ties so paging is stable.
	query = query.OrderBy("b.start_date DESC", "b.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := db.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}
	return bookings, nil
}

func (r *pgxRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	sub, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"booker_id": bookerID, "item_id": itemID}).
		Where(squirrel.Lt{"end_date": now}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build finished booking query failed: %w", err)
	}

	var exists bool
	if err := db.Conn(ctx, r.pool).QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished booking failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) LastApproved(ctx context.Context, itemID int64, now time.Time) (*item.BookingRef, error) {
	return r.approvedRef(ctx, psql.Select("id", "booker_id").
		From("public.bookings").
		Where(squirrel.Eq{"item_id": itemID, "status": string(StatusApproved)}).
		Where(squirrel.Lt{"end_date": now}).
		OrderBy("end_date DESC").
		Limit(1))
}

func (r *pgxRepository) NextApproved(ctx context.Context, itemID int64, now time.Time) (*item.BookingRef, error) {
	return r.approvedRef(ctx, psql.Select("id", "booker_id").
		From("public.bookings").
		Where(squirrel.Eq{"item_id": itemID, "status": string(StatusApproved)}).
		Where(squirrel.Gt{"start_date": now}).
		OrderBy("start_date ASC").
		Limit(1))
}

// approvedRef returns nil, nil when the query matches nothing.
func (r *pgxRepository) approvedRef(ctx context.Context, query squirrel.SelectBuilder) (*item.BookingRef, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking ref query failed: %w", err)
	}

	var ref item.BookingRef
	if err := db.Conn(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&ref.ID, &ref.BookerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking ref failed: %w", err)
	}
	return &ref, nil
}
