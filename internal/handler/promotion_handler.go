package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"menu-eva/internal/model"
	"menu-eva/internal/service"
)

// PromotionHandler handles promotional banner HTTP requests.
type PromotionHandler struct {
	service service.PromotionService
	logger  zerolog.Logger
}

// NewPromotionHandler creates a new promotion handler.
func NewPromotionHandler(service service.PromotionService, logger zerolog.Logger) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		logger:  logger.With().Str("handler", "promotion").Logger(),
	}
}

// GetAll handles GET /api/promotions requests.
func (h *PromotionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في جلب البنرات", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promotions)
}

// GetByID handles GET /api/promotions/{id} requests.
func (h *PromotionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف البنر غير صالح", h.logger)
		return
	}

	promotion, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "البنر غير موجود", "فشل في جلب البنر", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promotion)
}

type createPromotionRequest struct {
	Title         string  `json:"title"`
	TitleEn       *string `json:"title_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	ImageURL      *string `json:"image_url"`
	DisplayOrder  number  `json:"display_order"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
}

// Create handles POST /api/promotions requests.
func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "عنوان البنر مطلوب", h.logger)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "تاريخ البداية غير صالح", h.logger)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "تاريخ النهاية غير صالح", h.logger)
		return
	}

	displayOrder, _ := req.DisplayOrder.int()
	id, err := h.service.Create(r.Context(), model.NewPromotion{
		Title:         req.Title,
		TitleEn:       optString(req.TitleEn),
		Description:   optString(req.Description),
		DescriptionEn: optString(req.DescriptionEn),
		ImageURL:      optString(req.ImageURL),
		DisplayOrder:  displayOrder,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في إضافة البنر", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "تم إضافة البنر بنجاح", ID: id})
}

type updatePromotionRequest struct {
	Title         *string `json:"title"`
	TitleEn       *string `json:"title_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	ImageURL      *string `json:"image_url"`
	DisplayOrder  number  `json:"display_order"`
	IsActive      *bool   `json:"is_active"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
}

// Update handles PUT /api/promotions/{id} requests. Only the fields
// present in the body are applied.
func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف البنر غير صالح", h.logger)
		return
	}

	var req updatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	patch := model.PromotionPatch{
		Title:         optString(req.Title),
		TitleEn:       req.TitleEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		ImageURL:      optString(req.ImageURL),
		IsActive:      req.IsActive,
	}
	if v, ok := req.DisplayOrder.int(); ok {
		patch.DisplayOrder = &v
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "تاريخ البداية غير صالح", h.logger)
			return
		}
		patch.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "تاريخ النهاية غير صالح", h.logger)
			return
		}
		patch.EndDate = endDate
	}

	if err := h.service.Update(r.Context(), id, patch); err != nil {
		writeServiceError(w, err, "البنر غير موجود", "فشل في تحديث البنر", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم تحديث البنر بنجاح"})
}

// Delete handles DELETE /api/promotions/{id} requests.
func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف البنر غير صالح", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "البنر غير موجود", "فشل في حذف البنر", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم حذف البنر بنجاح"})
}
