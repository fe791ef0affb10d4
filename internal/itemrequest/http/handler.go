package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

const defaultPageSize = 20

type ItemRequestHandler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *ItemRequestHandler {
	return &ItemRequestHandler{service: service}
}

func (h *ItemRequestHandler) Create(c *gin.Context) {
	var body CreateItemRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	d, err := h.service.Create(c.Request.Context(), auth.GetCallerID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemRequestResponse(d))
}

// ListMine returns the caller's own requests, newest first.
func (h *ItemRequestHandler) ListMine(c *gin.Context) {
	details, err := h.service.ListMine(c.Request.Context(), auth.GetCallerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(details, NewItemRequestResponse))
}

// ListOthers returns requests posted by other users. from is a row offset here.
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	page, err := request.BindPage(c, defaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.ListOthers(c.Request.Context(), auth.GetCallerID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(details, NewItemRequestResponse))
}

func (h *ItemRequestHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), auth.GetCallerID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemRequestResponse(d))
}
