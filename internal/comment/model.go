package comment

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrTextRequired = apperror.Validation("comment text is required")
	ErrNoBookings   = apperror.Validation("Can't find bookings")
)

// Comment is an immutable note left on an item by one of its past bookers.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// View projects the comment onto the shape shown on the item view.
func (c *Comment) View() item.CommentView {
	return item.CommentView{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}
