package item

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item not found")
	ErrNotOwner            = apperror.NotFound("item can't be changed by this user")
	ErrRequestNotFound     = apperror.NotFound("requestId does not match any item request")
	ErrNameRequired        = apperror.Validation("name is required")
	ErrDescriptionRequired = apperror.Validation("description is required")
	ErrAvailableRequired   = apperror.Validation("available is required")
)

// Item is a listing offered for sharing by its owner.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // item request this listing answers, if any
}

// BookingRef is the {booking, booker} projection shown on the owner's item view.
type BookingRef struct {
	ID       int64
	BookerID int64
}

// CommentView is a comment as shown on the item view.
type CommentView struct {
	ID         int64
	Text       string
	AuthorName string
	Created    time.Time
}

// Detail is an item enriched for the item view. LastBooking and NextBooking
// are only populated when the viewer owns the item.
type Detail struct {
	Item
	LastBooking *BookingRef
	NextBooking *BookingRef
	Comments    []CommentView
}
