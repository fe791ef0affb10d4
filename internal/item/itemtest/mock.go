// Package itemtest provides a testify mock of item.Service.
package itemtest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, ownerID int64, req item.CreateRequest) (*item.Item, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, actorID, itemID int64, req item.UpdateRequest) (*item.Item, error) {
	args := m.Called(ctx, actorID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockService) IsAvailable(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) OwnerOf(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) GetDetail(ctx context.Context, actorID, itemID int64) (*item.Detail, error) {
	args := m.Called(ctx, actorID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Detail), args.Error(1)
}

func (m *MockService) ListByOwner(ctx context.Context, ownerID int64, page request.PageParams) ([]*item.Detail, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]*item.Detail), args.Error(1)
}

func (m *MockService) Search(ctx context.Context, text string, page request.PageParams) ([]*item.Item, error) {
	args := m.Called(ctx, text, page)
	return args.Get(0).([]*item.Item), args.Error(1)
}

func (m *MockService) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).([]*item.Item), args.Error(1)
}

// Items registers lookup expectations (GetByID, IsAvailable, OwnerOf) for
// each given item.
func (m *MockService) Items(items ...*item.Item) *MockService {
	for _, it := range items {
		m.On("GetByID", mock.Anything, it.ID).Return(it, nil).Maybe()
		m.On("IsAvailable", mock.Anything, it.ID).Return(it.Available, nil).Maybe()
		m.On("OwnerOf", mock.Anything, it.ID).Return(it.OwnerID, nil).Maybe()
	}
	return m
}

// Missing registers lookup expectations that fail with item.ErrNotFound.
func (m *MockService) Missing(ids ...int64) *MockService {
	for _, id := range ids {
		m.On("GetByID", mock.Anything, id).Return(nil, item.ErrNotFound).Maybe()
		m.On("IsAvailable", mock.Anything, id).Return(false, item.ErrNotFound).Maybe()
		m.On("OwnerOf", mock.Anything, id).Return(int64(0), item.ErrNotFound).Maybe()
	}
	return m
}
