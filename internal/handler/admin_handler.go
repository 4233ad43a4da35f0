package handler

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"menu-eva/internal/model"
	"menu-eva/internal/service"
)

// AdminHandler handles maintenance endpoints used by the dashboard.
type AdminHandler struct {
	products service.ProductService
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(products service.ProductService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		products: products,
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

type expiredNewResponse struct {
	Success         bool            `json:"success"`
	ExpiredProducts []model.Product `json:"expiredProducts"`
	Count           int             `json:"count"`
}

// ListExpiredNew handles GET /api/admin/cleanup-expired-new-products
// requests, listing products whose "new" badge has expired.
func (h *AdminHandler) ListExpiredNew(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListExpiredNew(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "حدث خطأ أثناء جلب المنتجات المنتهية الصلاحية", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, expiredNewResponse{
		Success:         true,
		ExpiredProducts: products,
		Count:           len(products),
	})
}

type cleanupResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// CleanupExpiredNew handles POST /api/admin/cleanup-expired-new-products
// requests, dropping expired "new" badges.
func (h *AdminHandler) CleanupExpiredNew(w http.ResponseWriter, r *http.Request) {
	affected, err := h.products.CleanupExpiredNew(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "حدث خطأ أثناء تنظيف المنتجات المنتهية الصلاحية", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cleanupResponse{
		Success:      true,
		Message:      fmt.Sprintf("تم تحديث %d منتج منتهي الصلاحية", affected),
		AffectedRows: affected,
	})
}
