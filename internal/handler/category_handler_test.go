package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menu-eva/internal/model"
)

// MockCategoryService is a mock implementation of CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, c model.NewCategory) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id int64, patch model.CategoryPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newCategoryRouter mounts the handler the way the real router does, so
// path parameters resolve.
func newCategoryRouter(h *CategoryHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/categories", h.GetAll)
	r.Get("/api/categories/{id}", h.GetByID)
	r.Post("/api/categories", h.Create)
	r.Put("/api/categories/{id}", h.Update)
	r.Delete("/api/categories/{id}", h.Delete)
	return r
}

func TestCategoryHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCategoryService)
	mockService.On("GetAll", mock.Anything).Return([]model.Category{
		{ID: 1, Name: "مشروبات", DisplayOrder: 1, IsActive: true},
	}, nil)

	router := newCategoryRouter(NewCategoryHandler(mockService, logger))

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var categories []model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "مشروبات", categories[0].Name)
}

func TestCategoryHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockCategoryService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Category exists",
			path: "/api/categories/1",
			setupMock: func(m *MockCategoryService) {
				m.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Category{ID: 1, Name: "مشروبات"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Category missing",
			path: "/api/categories/99",
			setupMock: func(m *MockCategoryService) {
				m.On("GetByID", mock.Anything, int64(99)).
					Return(nil, model.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "الصنف غير موجود",
		},
		{
			name:           "Invalid id",
			path:           "/api/categories/abc",
			setupMock:      func(m *MockCategoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCategoryService)
			tt.setupMock(mockService)
			router := newCategoryRouter(NewCategoryHandler(mockService, logger))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockCategoryService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Valid category",
			body: `{"name": "مشروبات", "name_en": "Drinks", "display_order": 2}`,
			setupMock: func(m *MockCategoryService) {
				nameEn := "Drinks"
				m.On("Create", mock.Anything, model.NewCategory{
					Name:         "مشروبات",
					NameEn:       &nameEn,
					DisplayOrder: 2,
				}).Return(int64(5), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Display order sent as string",
			body: `{"name": "مشروبات", "display_order": "3"}`,
			setupMock: func(m *MockCategoryService) {
				m.On("Create", mock.Anything, model.NewCategory{
					Name:         "مشروبات",
					DisplayOrder: 3,
				}).Return(int64(6), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing name",
			body:           `{"name_en": "Drinks"}`,
			setupMock:      func(m *MockCategoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "اسم الصنف مطلوب",
		},
		{
			name:           "Malformed body",
			body:           `{`,
			setupMock:      func(m *MockCategoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCategoryService)
			tt.setupMock(mockService)
			router := newCategoryRouter(NewCategoryHandler(mockService, logger))

			req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var resp messageResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "تم إضافة الصنف بنجاح", resp.Message)
				assert.NotZero(t, resp.ID)
			}
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCategoryHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("partial update only carries present fields", func(t *testing.T) {
		isActive := false
		mockService := new(MockCategoryService)
		mockService.On("Update", mock.Anything, int64(1), model.CategoryPatch{
			IsActive: &isActive,
		}).Return(nil)

		router := newCategoryRouter(NewCategoryHandler(mockService, logger))

		req := httptest.NewRequest(http.MethodPut, "/api/categories/1", bytes.NewBufferString(`{"is_active": false}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		mockService := new(MockCategoryService)
		mockService.On("Update", mock.Anything, int64(1), model.CategoryPatch{}).
			Return(model.ErrEmptyPatch)

		router := newCategoryRouter(NewCategoryHandler(mockService, logger))

		req := httptest.NewRequest(http.MethodPut, "/api/categories/1", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCategoryService)
	mockService.On("Delete", mock.Anything, int64(1)).Return(nil)

	router := newCategoryRouter(NewCategoryHandler(mockService, logger))

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp messageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "تم حذف الصنف بنجاح", resp.Message)
	mockService.AssertExpectations(t)
}
