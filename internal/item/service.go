package item

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type CreateRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

// UpdateRequest is a partial patch; nil fields are left untouched.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// BookingSummaries provides the owner-only booking projections of the item view.
type BookingSummaries interface {
	// LastApproved returns the most recent approved booking that ended before now.
	LastApproved(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
	// NextApproved returns the earliest approved booking starting after now.
	NextApproved(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
}

// CommentSource lists the comments shown on the item view.
type CommentSource interface {
	ListForItem(ctx context.Context, itemID int64) ([]CommentView, error)
}

type Service interface {
	Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error)
	Update(ctx context.Context, actorID, itemID int64, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)
	OwnerOf(ctx context.Context, id int64) (int64, error)
	GetDetail(ctx context.Context, actorID, itemID int64) (*Detail, error)
	ListByOwner(ctx context.Context, ownerID int64, page request.PageParams) ([]*Detail, error)
	Search(ctx context.Context, text string, page request.PageParams) ([]*Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
}

type service struct {
	repo        Repository
	userService user.Service
	bookings    BookingSummaries
	comments    CommentSource
	tx          db.Transactor
	now         func() time.Time
}

func NewService(repo Repository, userService user.Service, bookings BookingSummaries, comments CommentSource, tx db.Transactor) Service {
	return &service{
		repo:        repo,
		userService: userService,
		bookings:    bookings,
		comments:    comments,
		tx:          tx,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Available == nil {
		return nil, ErrAvailableRequired
	}

	it := &Item{
		Name:        name,
		Description: description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
			return err
		}
		return s.repo.Create(ctx, it)
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", it.ID).Int64("owner_id", ownerID).Msg("item listed")
	return it, nil
}

func (s *service) Update(ctx context.Context, actorID, itemID int64, req UpdateRequest) (*Item, error) {
	var updated *Item

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userService.GetByID(ctx, actorID); err != nil {
			return err
		}
		it, err := s.repo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if it.OwnerID != actorID {
			return ErrNotOwner
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return ErrNameRequired
			}
			it.Name = name
		}
		if req.Description != nil {
			description := strings.TrimSpace(*req.Description)
			if description == "" {
				return ErrDescriptionRequired
			}
			it.Description = description
		}
		if req.Available != nil {
			it.Available = *req.Available
		}

		if err := s.repo.Update(ctx, it); err != nil {
			return err
		}
		updated = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) IsAvailable(ctx context.Context, id int64) (bool, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return it.Available, nil
}

func (s *service) OwnerOf(ctx context.Context, id int64) (int64, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return it.OwnerID, nil
}

func (s *service) GetDetail(ctx context.Context, actorID, itemID int64) (*Detail, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, actorID, it)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, page request.PageParams) ([]*Detail, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID, page.Size, request.PageOffset(page.From, page.Size))
	if err != nil {
		return nil, err
	}

	details := make([]*Detail, 0, len(items))
	for _, it := range items {
		d, err := s.enrich(ctx, ownerID, it)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *service) Search(ctx context.Context, text string, page request.PageParams) ([]*Item, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text, page.Size, request.PageOffset(page.From, page.Size))
}

func (s *service) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error) {
	return s.repo.ListByRequestIDs(ctx, requestIDs)
}

// enrich attaches comments for every viewer and booking projections for the owner.
func (s *service) enrich(ctx context.Context, viewerID int64, it *Item) (*Detail, error) {
	d := &Detail{Item: *it}

	if it.OwnerID == viewerID {
		now := s.now()
		last, err := s.bookings.LastApproved(ctx, it.ID, now)
		if err != nil {
			return nil, err
		}
		next, err := s.bookings.NextApproved(ctx, it.ID, now)
		if err != nil {
			return nil, err
		}
		d.LastBooking = last
		d.NextBooking = next
	}

	comments, err := s.comments.ListForItem(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	d.Comments = comments
	return d, nil
}
