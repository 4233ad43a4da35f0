package service

import (
	"context"
	"errors"
	"testing"

	"menu-eva/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c model.NewCategory) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id int64, patch model.CategoryPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCategoryService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("existing category", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("GetByID", ctx, int64(1)).
			Return(&model.Category{ID: 1, Name: "مشروبات"}, nil)
		svc := NewCategoryService(mockRepo, logger)

		category, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "مشروبات", category.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil result maps to not found", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)
		svc := NewCategoryService(mockRepo, logger)

		category, err := svc.GetByID(ctx, 99)
		assert.Equal(t, model.ErrNotFound, err)
		assert.Nil(t, category)
	})
}

func TestCategoryService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("empty patch passes through unwrapped", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Update", ctx, int64(1), model.CategoryPatch{}).
			Return(model.ErrEmptyPatch)
		svc := NewCategoryService(mockRepo, logger)

		err := svc.Update(ctx, 1, model.CategoryPatch{})
		assert.Equal(t, model.ErrEmptyPatch, err)
	})

	t.Run("repository errors are wrapped", func(t *testing.T) {
		name := "مأكولات"
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Update", ctx, int64(1), model.CategoryPatch{Name: &name}).
			Return(errors.New("database error"))
		svc := NewCategoryService(mockRepo, logger)

		err := svc.Update(ctx, 1, model.CategoryPatch{Name: &name})
		require.Error(t, err)
		assert.NotEqual(t, model.ErrEmptyPatch, err)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockCategoryRepository)
	mockRepo.On("Delete", ctx, int64(1)).Return(nil)
	svc := NewCategoryService(mockRepo, logger)

	require.NoError(t, svc.Delete(ctx, 1))
	mockRepo.AssertExpectations(t)
}
