// Package usertest provides a testify mock of user.Service for the
// packages that check user existence.
package usertest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req user.CreateRequest) (*user.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, req user.UpdateRequest) (*user.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Known registers GetByID expectations that resolve each id to a user.
func (m *MockService) Known(ids ...int64) *MockService {
	for _, id := range ids {
		m.On("GetByID", mock.Anything, id).Return(&user.User{ID: id, Name: "user"}, nil).Maybe()
	}
	return m
}

// Unknown registers GetByID expectations that fail with user.ErrNotFound.
func (m *MockService) Unknown(ids ...int64) *MockService {
	for _, id := range ids {
		m.On("GetByID", mock.Anything, id).Return(nil, user.ErrNotFound).Maybe()
	}
	return m
}

// PassthroughTx runs fn directly on the caller's context.
type PassthroughTx struct{}

func (PassthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
