package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

const defaultPageSize = 20

type ItemHandler struct {
	itemService item.Service
}

func NewHandler(itemService item.Service) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create lists a new item owned by the caller.
func (h *ItemHandler) Create(c *gin.Context) {
	var body CreateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	it, err := h.itemService.Create(c.Request.Context(), auth.GetCallerID(c), item.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

// Update patches an item. Only the owner may change it.
func (h *ItemHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	var body UpdateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	it, err := h.itemService.Update(c.Request.Context(), auth.GetCallerID(c), uri.ID, item.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *ItemHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	d, err := h.itemService.GetDetail(c.Request.Context(), auth.GetCallerID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemDetailResponse(d))
}

// ListMine returns the caller's items ordered by id.
func (h *ItemHandler) ListMine(c *gin.Context) {
	page, err := request.BindPage(c, defaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.itemService.ListByOwner(c.Request.Context(), auth.GetCallerID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(details, NewItemDetailResponse))
}

// Search matches available items by name or description.
func (h *ItemHandler) Search(c *gin.Context) {
	page, err := request.BindPage(c, defaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.itemService.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(items, NewItemResponse))
}
