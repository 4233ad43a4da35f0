package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"menu-eva/internal/model"
)

func TestAdminHandler_ListExpiredNew(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("expired products are listed with a count", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("ListExpiredNew", mock.Anything).Return([]model.Product{
			{ID: 1, Name: "موهيتو", IsNew: true},
			{ID: 2, Name: "آيس لاتيه", IsNew: true},
		}, nil)

		h := NewAdminHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/cleanup-expired-new-products", nil)
		w := httptest.NewRecorder()
		h.ListExpiredNew(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success         bool            `json:"success"`
			ExpiredProducts []model.Product `json:"expiredProducts"`
			Count           int             `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Count)
		assert.Len(t, resp.ExpiredProducts, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("no expired products yields an empty list, not null", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("ListExpiredNew", mock.Anything).Return(nil, nil)

		h := NewAdminHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/cleanup-expired-new-products", nil)
		w := httptest.NewRecorder()
		h.ListExpiredNew(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"expiredProducts":[]`)
		assert.Contains(t, w.Body.String(), `"count":0`)
	})
}

func TestAdminHandler_CleanupExpiredNew(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	mockService.On("CleanupExpiredNew", mock.Anything).Return(int64(3), nil)

	h := NewAdminHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/cleanup-expired-new-products", nil)
	w := httptest.NewRecorder()
	h.CleanupExpiredNew(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		AffectedRows int64  `json:"affectedRows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.AffectedRows)
	assert.Equal(t, "تم تحديث 3 منتج منتهي الصلاحية", resp.Message)
	mockService.AssertExpectations(t)
}
