package comment

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

// BookingHistory answers whether a user has finished a booking of an item.
type BookingHistory interface {
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type Service interface {
	// Add posts a comment. Any booking of the item by the author that ended
	// before now makes them eligible, whatever its status.
	Add(ctx context.Context, authorID, itemID int64, text string) (*Comment, error)
}

type service struct {
	repo        Repository
	history     BookingHistory
	userService user.Service
	itemService item.Service
	tx          db.Transactor
	now         func() time.Time
}

func NewService(repo Repository, history BookingHistory, userService user.Service, itemService item.Service, tx db.Transactor) Service {
	return &service{
		repo:        repo,
		history:     history,
		userService: userService,
		itemService: itemService,
		tx:          tx,
		now:         time.Now,
	}
}

func (s *service) Add(ctx context.Context, authorID, itemID int64, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	var created *Comment

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.now()

		ok, err := s.history.HasFinishedBooking(ctx, authorID, itemID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoBookings
		}

		author, err := s.userService.GetByID(ctx, authorID)
		if err != nil {
			return err
		}
		if _, err := s.itemService.GetByID(ctx, itemID); err != nil {
			return err
		}

		c := &Comment{
			Text:       text,
			ItemID:     itemID,
			AuthorID:   author.ID,
			AuthorName: author.Name,
			Created:    now,
		}
		if err := s.repo.Create(ctx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("comment_id", created.ID).Int64("item_id", itemID).Msg("comment added")
	return created, nil
}
