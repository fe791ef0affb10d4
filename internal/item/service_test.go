package item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/user"
	"github.com/nekogravitycat/shareit-backend/internal/user/usertest"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, it *Item) error {
	args := m.Called(ctx, it)
	if args.Error(0) == nil {
		it.ID = 10
	}
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, it *Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockRepo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*Item, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *mockRepo) Search(ctx context.Context, text string, limit, offset int) ([]*Item, error) {
	args := m.Called(ctx, text, limit, offset)
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *mockRepo) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).([]*Item), args.Error(1)
}

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) LastApproved(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingRef), args.Error(1)
}

func (m *mockBookings) NextApproved(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingRef), args.Error(1)
}

type staticComments map[int64][]CommentView

func (s staticComments) ListForItem(_ context.Context, itemID int64) ([]CommentView, error) {
	return s[itemID], nil
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository, users user.Service, bookings BookingSummaries, comments CommentSource) *service {
	s := NewService(repo, users, bookings, comments, usertest.PassthroughTx{}).(*service)
	s.now = func() time.Time { return fixedNow }
	return s
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists for existing owner", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(it *Item) bool {
			return it.Name == "Drill" && it.OwnerID == 1 && it.Available
		})).Return(nil)

		svc := newTestService(repo, new(usertest.MockService).Known(1), nil, nil)
		it, err := svc.Create(ctx, 1, CreateRequest{Name: " Drill ", Description: "cordless", Available: ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, int64(10), it.ID)
		repo.AssertExpectations(t)
	})

	t.Run("validation happens before lookups", func(t *testing.T) {
		svc := newTestService(new(mockRepo), new(usertest.MockService), nil, nil)

		_, err := svc.Create(ctx, 1, CreateRequest{Description: "d", Available: ptr(true)})
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.Create(ctx, 1, CreateRequest{Name: "n", Description: " ", Available: ptr(true)})
		assert.ErrorIs(t, err, ErrDescriptionRequired)

		_, err = svc.Create(ctx, 1, CreateRequest{Name: "n", Description: "d"})
		assert.ErrorIs(t, err, ErrAvailableRequired)
	})

	t.Run("unknown owner", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo, new(usertest.MockService).Unknown(9), nil, nil)

		_, err := svc.Create(ctx, 9, CreateRequest{Name: "n", Description: "d", Available: ptr(false)})
		assert.ErrorIs(t, err, user.ErrNotFound)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("owner patches selected fields", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(&Item{ID: 10, Name: "Drill", Description: "old", Available: true, OwnerID: 1}, nil)
		repo.On("Update", mock.Anything, &Item{ID: 10, Name: "Drill", Description: "new", Available: false, OwnerID: 1}).Return(nil)

		svc := newTestService(repo, new(usertest.MockService).Known(1), nil, nil)
		it, err := svc.Update(ctx, 1, 10, UpdateRequest{Description: ptr("new"), Available: ptr(false)})
		require.NoError(t, err)
		assert.Equal(t, "new", it.Description)
		repo.AssertExpectations(t)
	})

	t.Run("non owner gets not found", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(&Item{ID: 10, OwnerID: 1}, nil)

		svc := newTestService(repo, new(usertest.MockService).Known(2), nil, nil)
		_, err := svc.Update(ctx, 2, 10, UpdateRequest{Name: ptr("mine")})
		assert.ErrorIs(t, err, ErrNotOwner)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(&Item{ID: 10, Name: "Drill", OwnerID: 1}, nil)

		svc := newTestService(repo, new(usertest.MockService).Known(1), nil, nil)
		_, err := svc.Update(ctx, 1, 10, UpdateRequest{Name: ptr("")})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("unknown actor is checked before the item", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo, new(usertest.MockService).Unknown(3), nil, nil)

		_, err := svc.Update(ctx, 3, 10, UpdateRequest{})
		assert.ErrorIs(t, err, user.ErrNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestGetDetail(t *testing.T) {
	ctx := context.Background()
	drill := &Item{ID: 10, Name: "Drill", OwnerID: 1, Available: true}
	comments := staticComments{10: {{ID: 1, Text: "great", AuthorName: "Bob", Created: fixedNow}}}

	t.Run("owner sees booking projections", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(drill, nil)
		bookings := new(mockBookings)
		bookings.On("LastApproved", mock.Anything, int64(10), fixedNow).Return(&BookingRef{ID: 3, BookerID: 2}, nil)
		bookings.On("NextApproved", mock.Anything, int64(10), fixedNow).Return(nil, nil)

		svc := newTestService(repo, new(usertest.MockService).Known(1), bookings, comments)
		d, err := svc.GetDetail(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, &BookingRef{ID: 3, BookerID: 2}, d.LastBooking)
		assert.Nil(t, d.NextBooking)
		assert.Len(t, d.Comments, 1)
		bookings.AssertExpectations(t)
	})

	t.Run("other viewers see comments only", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, int64(10)).Return(drill, nil)
		bookings := new(mockBookings)

		svc := newTestService(repo, new(usertest.MockService).Known(2), bookings, comments)
		d, err := svc.GetDetail(ctx, 2, 10)
		require.NoError(t, err)
		assert.Nil(t, d.LastBooking)
		assert.Nil(t, d.NextBooking)
		assert.Equal(t, "Bob", d.Comments[0].AuthorName)
		bookings.AssertNotCalled(t, "LastApproved", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing item", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetByID", mock.Anything, int64(99)).Return(nil, ErrNotFound)

		svc := newTestService(repo, new(usertest.MockService).Known(1), nil, comments)
		_, err := svc.GetDetail(ctx, 1, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCollaboratorSurface(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&Item{ID: 10, OwnerID: 4, Available: false}, nil)
	svc := newTestService(repo, nil, nil, nil)

	ok, err := svc.IsAvailable(ctx, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	owner, err := svc.OwnerOf(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), owner)
}

func TestListByOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("page index arithmetic", func(t *testing.T) {
		repo := new(mockRepo)
		// from=5,size=2 selects page 2, i.e. rows 4 and 5.
		repo.On("ListByOwner", mock.Anything, int64(1), 2, 4).Return([]*Item{{ID: 10, OwnerID: 1}}, nil)
		bookings := new(mockBookings)
		bookings.On("LastApproved", mock.Anything, int64(10), fixedNow).Return(nil, nil)
		bookings.On("NextApproved", mock.Anything, int64(10), fixedNow).Return(nil, nil)

		svc := newTestService(repo, new(usertest.MockService).Known(1), bookings, staticComments{})
		list, err := svc.ListByOwner(ctx, 1, request.PageParams{From: 5, Size: 2})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(10), list[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("bad paging", func(t *testing.T) {
		svc := newTestService(new(mockRepo), new(usertest.MockService), nil, nil)
		_, err := svc.ListByOwner(ctx, 1, request.PageParams{From: -1, Size: 10})
		assert.ErrorIs(t, err, request.ErrIncorrectPaging)
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc := newTestService(new(mockRepo), new(usertest.MockService).Unknown(7), nil, nil)
		_, err := svc.ListByOwner(ctx, 7, request.PageParams{From: 0, Size: 10})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text returns nothing without querying", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo, nil, nil, nil)

		list, err := svc.Search(ctx, "", request.PageParams{From: 0, Size: 20})
		require.NoError(t, err)
		assert.Empty(t, list)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delegates with page offset", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Search", mock.Anything, "it", 20, 0).Return([]*Item{{ID: 1, Name: "item"}}, nil)
		svc := newTestService(repo, nil, nil, nil)

		list, err := svc.Search(ctx, "it", request.PageParams{From: 3, Size: 20})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off`, escapeLike("50%_off"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, "drill", escapeLike("drill"))
}
