package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"menu-eva/internal/model"
	"menu-eva/internal/service"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// GetAll handles GET /api/categories requests.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في جلب الأصناف", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetByID handles GET /api/categories/{id} requests.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف الصنف غير صالح", h.logger)
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "الصنف غير موجود", "فشل في جلب الصنف", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

type createCategoryRequest struct {
	Name          string  `json:"name"`
	NameEn        *string `json:"name_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	DisplayOrder  number  `json:"display_order"`
}

// Create handles POST /api/categories requests.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "اسم الصنف مطلوب", h.logger)
		return
	}

	displayOrder, _ := req.DisplayOrder.int()
	id, err := h.service.Create(r.Context(), model.NewCategory{
		Name:          req.Name,
		NameEn:        optString(req.NameEn),
		Description:   optString(req.Description),
		DescriptionEn: optString(req.DescriptionEn),
		DisplayOrder:  displayOrder,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في إضافة الصنف", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "تم إضافة الصنف بنجاح", ID: id})
}

type updateCategoryRequest struct {
	Name          *string `json:"name"`
	NameEn        *string `json:"name_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	DisplayOrder  number  `json:"display_order"`
	IsActive      *bool   `json:"is_active"`
}

// Update handles PUT /api/categories/{id} requests. Only the fields
// present in the body are applied.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف الصنف غير صالح", h.logger)
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	patch := model.CategoryPatch{
		Name:          optString(req.Name),
		NameEn:        req.NameEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		IsActive:      req.IsActive,
	}
	if v, ok := req.DisplayOrder.int(); ok {
		patch.DisplayOrder = &v
	}

	if err := h.service.Update(r.Context(), id, patch); err != nil {
		writeServiceError(w, err, "الصنف غير موجود", "فشل في تحديث الصنف", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم تحديث الصنف بنجاح"})
}

// Delete handles DELETE /api/categories/{id} requests. Deleting a
// category removes its products through the foreign key cascade.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف الصنف غير صالح", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "الصنف غير موجود", "فشل في حذف الصنف", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم حذف الصنف بنجاح"})
}
