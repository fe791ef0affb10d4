package itemrequest

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item request not found")
	ErrDescriptionRequired = apperror.Validation("description is required")
)

// ItemRequest is a posted need for an item nobody has listed yet.
// It is never changed after creation.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// Detail is a request together with the items listed in answer to it.
type Detail struct {
	ItemRequest
	Items []*item.Item
}
