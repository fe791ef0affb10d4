package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, requesterID int64, description *string) (*itemrequest.Detail, error) {
	args := m.Called(ctx, requesterID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*itemrequest.Detail), args.Error(1)
}

func (m *mockService) ListMine(ctx context.Context, requesterID int64) ([]*itemrequest.Detail, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]*itemrequest.Detail), args.Error(1)
}

func (m *mockService) ListOthers(ctx context.Context, actorID int64, page request.PageParams) ([]*itemrequest.Detail, error) {
	args := m.Called(ctx, actorID, page)
	return args.Get(0).([]*itemrequest.Detail), args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, actorID, requestID int64) (*itemrequest.Detail, error) {
	args := m.Called(ctx, actorID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*itemrequest.Detail), args.Error(1)
}

func do(svc itemrequest.Service, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc), auth.CallerRequired())

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.CallerHeader, "1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestListOthersDefaults(t *testing.T) {
	reqID := int64(4)
	svc := new(mockService)
	svc.On("ListOthers", mock.Anything, int64(1), request.PageParams{From: 0, Size: 20}).Return([]*itemrequest.Detail{{
		ItemRequest: itemrequest.ItemRequest{ID: 4, Description: "ladder", RequesterID: 2, Created: created},
		Items:       []*item.Item{{ID: 7, Name: "Ladder", Description: "3m", Available: true, OwnerID: 1, RequestID: &reqID}},
	}}, nil)

	w := do(svc, http.MethodGet, "/requests/all", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id": 4, "description": "ladder", "created": "2024-05-01T12:00:00Z",
		"items": [{"id": 7, "name": "Ladder", "description": "3m", "available": true, "requestId": 4}]
	}]`, w.Body.String())
}

func TestCreateWithoutDescription(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, int64(1), (*string)(nil)).Return(nil, itemrequest.ErrDescriptionRequired)

	w := do(svc, http.MethodPost, "/requests", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(d *string) bool { return d != nil && *d == "ladder" })).
		Return(&itemrequest.Detail{
			ItemRequest: itemrequest.ItemRequest{ID: 4, Description: "ladder", RequesterID: 1, Created: created},
			Items:       []*item.Item{},
		}, nil)

	w := do(svc, http.MethodPost, "/requests", `{"description":"ladder"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":4,"description":"ladder","created":"2024-05-01T12:00:00Z","items":[]}`, w.Body.String())
}

func TestGetMissing(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, int64(1), int64(4)).Return(nil, itemrequest.ErrNotFound)

	w := do(svc, http.MethodGet, "/requests/4", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
