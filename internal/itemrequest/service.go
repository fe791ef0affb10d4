package itemrequest

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type Service interface {
	// Create requires a non-nil description; an empty string is accepted.
	Create(ctx context.Context, requesterID int64, description *string) (*Detail, error)
	ListMine(ctx context.Context, requesterID int64) ([]*Detail, error)
	// ListOthers pages with a true row offset, unlike booking and item lists.
	ListOthers(ctx context.Context, actorID int64, page request.PageParams) ([]*Detail, error)
	GetByID(ctx context.Context, actorID, requestID int64) (*Detail, error)
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

func (s *service) Create(ctx context.Context, requesterID int64, description *string) (*Detail, error) {
	if description == nil {
		return nil, ErrDescriptionRequired
	}

	req := &ItemRequest{
		Description: *description,
		RequesterID: requesterID,
		Created:     s.now(),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userService.GetByID(ctx, requesterID); err != nil {
			return err
		}
		return s.repo.Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("request_id", req.ID).Int64("requester_id", requesterID).Msg("item request posted")
	return &Detail{ItemRequest: *req, Items: []*item.Item{}}, nil
}

func (s *service) ListMine(ctx context.Context, requesterID int64) ([]*Detail, error) {
	if _, err := s.userService.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, actorID int64, page request.PageParams) ([]*Detail, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	requests, err := s.repo.ListExcept(ctx, actorID, page.Size, page.From)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) GetByID(ctx context.Context, actorID, requestID int64) (*Detail, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	details, err := s.attachItems(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

// attachItems loads the answering items of all requests with one query.
func (s *service) attachItems(ctx context.Context, requests []*ItemRequest) ([]*Detail, error) {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	items, err := s.itemService.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]*item.Item, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	details := make([]*Detail, 0, len(requests))
	for _, r := range requests {
		answered := byRequest[r.ID]
		if answered == nil {
			answered = []*item.Item{}
		}
		details = append(details, &Detail{ItemRequest: *r, Items: answered})
	}
	return details, nil
}
