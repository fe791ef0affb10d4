package http

import (
	"time"

	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

type ItemRequestResponse struct {
	ID          int64                   `json:"id"`
	Description string                  `json:"description"`
	Created     time.Time               `json:"created"`
	Items       []itemHttp.ItemResponse `json:"items"`
}

func NewItemRequestResponse(d *itemrequest.Detail) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          d.ID,
		Description: d.Description,
		Created:     d.Created,
		Items:       response.List(d.Items, itemHttp.NewItemResponse),
	}
}

// CreateItemRequestRequest defines the payload for POST /requests.
// Description is a pointer so a missing field can be told apart from "".
type CreateItemRequestRequest struct {
	Description *string `json:"description"`
}
