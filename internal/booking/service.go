package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/metrics"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type Service interface {
	Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error)
	Decide(ctx context.Context, actorID, bookingID int64, approve bool) (*Booking, error)
	GetByID(ctx context.Context, actorID, bookingID int64) (*Booking, error)
	ListForBooker(ctx context.Context, bookerID int64, state string, page request.PageParams) ([]*Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state string, page request.PageParams) ([]*Booking, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service
	tx          db.Transactor
	now         func() time.Time
}

func NewService(repo Repository, userService user.Service, itemService item.Service, tx db.Transactor) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
		tx:          tx,
		now:         time.Now,
	}
}

// Create stores a WAITING booking. Checks run in a fixed order and the first
// failure wins. Overlapping bookings of the same item are not rejected.
func (s *service) Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error) {
	var created *Booking

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		booker, err := s.userService.GetByID(ctx, bookerID)
		if err != nil {
			return err
		}
		available, err := s.itemService.IsAvailable(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if !available {
			return ErrItemUnavailable
		}
		if err := validateRange(req.Start, req.End, s.now()); err != nil {
			return err
		}
		ownerID, err := s.itemService.OwnerOf(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if ownerID == bookerID {
			return ErrWrongOwner
		}

		it, err := s.itemService.GetByID(ctx, req.ItemID)
		if err != nil {
			return err
		}

		b := &Booking{
			Start:  req.Start,
			End:    req.End,
			Status: StatusWaiting,
			Item:   *it,
			Booker: *booker,
		}
		if err := s.repo.Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(string(StatusWaiting))
	zerolog.Ctx(ctx).Info().
		Int64("booking_id", created.ID).
		Int64("item_id", created.Item.ID).
		Int64("booker_id", bookerID).
		Msg("booking requested")
	return created, nil
}

// validateRange rejects ranges that start or end before now, are empty or inverted.
func validateRange(start, end, now time.Time) error {
	if start.Before(now) || end.Before(now) || start.Equal(end) || start.After(end) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Decide approves or rejects a booking. APPROVED is final; a REJECTED
// booking may be decided again.
func (s *service) Decide(ctx context.Context, actorID, bookingID int64, approve bool) (*Booking, error) {
	var decided *Booking

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.LockByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Item.OwnerID != actorID {
			return ErrWrongOwner
		}
		if b.Status == StatusApproved {
			return ErrAlreadyConfirmed
		}

		b.Status = StatusRejected
		if approve {
			b.Status = StatusApproved
		}
		if err := s.repo.UpdateStatus(ctx, b.ID, b.Status); err != nil {
			return err
		}
		decided = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(string(decided.Status))
	zerolog.Ctx(ctx).Info().
		Int64("booking_id", decided.ID).
		Str("status", string(decided.Status)).
		Msg("booking decided")
	return decided, nil
}

// GetByID is visible to the booker and to the item's owner only.
func (s *service) GetByID(ctx context.Context, actorID, bookingID int64) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Item.OwnerID != actorID && b.Booker.ID != actorID {
		return nil, ErrNotVisible
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID int64, state string, page request.PageParams) ([]*Booking, error) {
	return s.list(ctx, bookerID, state, page, func(f *Filter) { f.BookerID = bookerID })
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state string, page request.PageParams) ([]*Booking, error) {
	return s.list(ctx, ownerID, state, page, func(f *Filter) { f.OwnerID = ownerID })
}

// list validates paging, then the actor, then the state token, and returns
// bookings ordered by start descending.
func (s *service) list(ctx context.Context, actorID int64, state string, page request.PageParams, scope func(*Filter)) ([]*Booking, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	st, err := ParseState(state)
	if err != nil {
		return nil, err
	}

	filter := Filter{
		State:  st,
		Now:    s.now(),
		Limit:  page.Size,
		Offset: request.PageOffset(page.From, page.Size),
	}
	scope(&filter)

	return s.repo.List(ctx, filter)
}
