package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/model"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]model.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *mockStore) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, fields map[string]any) (*model.Article, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id int64, fields map[string]any) (*model.Article, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func ptr[T any](v T) *T { return &v }

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "article not found", httpErr.Message)
}

func TestResourceService_Get(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	svc := NewResourceService[model.Article](store, "article")

	store.On("FindByID", ctx, int64(1)).Return(&model.Article{ID: 1, Title: "First"}, nil)
	store.On("FindByID", ctx, int64(2)).Return(nil, nil)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	_, err = svc.Get(ctx, 2)
	requireNotFound(t, err)
	store.AssertExpectations(t)
}

func TestResourceService_Get_StoreError(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	svc := NewResourceService[model.Article](store, "article")

	boom := errors.New("connection reset")
	store.On("FindByID", ctx, int64(1)).Return(nil, boom)

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, boom)
}

func TestResourceService_List(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	svc := NewResourceService[model.Article](store, "article")

	store.On("List", ctx).Return([]model.Article{}, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResourceService_Create(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	svc := NewResourceService[model.Article](store, "article")

	payload := &model.CreateArticleRequest{Title: ptr("T"), Content: ptr("C"), Style: ptr("News")}
	store.On("Insert", ctx, map[string]any{"title": "T", "content": "C", "style": "News"}).
		Return(&model.Article{ID: 5, Title: "T", Content: "C", Style: "News"}, nil)

	got, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	store.AssertExpectations(t)
}

func TestResourceService_Update(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	svc := NewResourceService[model.Article](store, "article")

	fields := map[string]any{"title": "X"}
	store.On("Update", ctx, int64(1), fields).Return(&model.Article{ID: 1, Title: "X"}, nil)
	store.On("Update", ctx, int64(2), fields).Return(nil, nil)

	require.NoError(t, svc.Update(ctx, 1, &model.UpdateArticleRequest{Title: ptr("X")}))
	requireNotFound(t, svc.Update(ctx, 2, &model.UpdateArticleRequest{Title: ptr("X")}))
}

func TestResourceService_Delete(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	svc := NewResourceService[model.Article](store, "article")

	store.On("Delete", ctx, int64(1)).Return(int64(1), nil).Once()
	store.On("Delete", ctx, int64(1)).Return(int64(0), nil).Once()

	require.NoError(t, svc.Delete(ctx, 1))
	requireNotFound(t, svc.Delete(ctx, 1))
	store.AssertExpectations(t)
}
