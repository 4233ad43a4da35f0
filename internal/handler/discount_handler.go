package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"menu-eva/internal/model"
	"menu-eva/internal/service"
)

// DiscountHandler handles discount code HTTP requests.
type DiscountHandler struct {
	service service.DiscountService
	logger  zerolog.Logger
}

// NewDiscountHandler creates a new discount handler.
func NewDiscountHandler(service service.DiscountService, logger zerolog.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		logger:  logger.With().Str("handler", "discount").Logger(),
	}
}

// GetAll handles GET /api/discounts requests. Disabled codes are
// included so the dashboard can show redemption history.
func (h *DiscountHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في جلب الخصومات", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, discounts)
}

// GetByID handles GET /api/discounts/{id} requests.
func (h *DiscountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف الخصم غير صالح", h.logger)
		return
	}

	discount, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "الخصم غير موجود", "فشل في جلب الخصم", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, discount)
}

// GetByCode handles GET /api/discounts/code/{code} requests. Only
// active codes are resolved.
func (h *DiscountHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "كود الخصم مطلوب", h.logger)
		return
	}

	discount, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		writeServiceError(w, err, "الخصم غير موجود", "فشل في جلب الخصم", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, discount)
}

type createDiscountRequest struct {
	Code       string `json:"code"`
	Percentage number `json:"percentage"`
	UsageLimit number `json:"usage_limit"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// Create handles POST /api/discounts requests.
func (h *DiscountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	percentage, percentageOK := req.Percentage.float()
	if req.Code == "" || !percentageOK {
		writeError(w, http.StatusBadRequest, "كود الخصم والنسبة مطلوبان", h.logger)
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

	d := model.NewDiscount{
		Code:       req.Code,
		Percentage: percentage,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if v, ok := req.UsageLimit.int(); ok {
		d.UsageLimit = &v
	}

	id, err := h.service.Create(r.Context(), d)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في إضافة الخصم", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "تم إضافة الخصم بنجاح", ID: id})
}

type updateDiscountRequest struct {
	Code       *string `json:"code"`
	Percentage number  `json:"percentage"`
	Status     *string `json:"status"`
	UsageLimit number  `json:"usage_limit"`
	UsedCount  number  `json:"used_count"`
}

// Update handles PUT /api/discounts/{id} requests. Only the fields
// present in the body are applied.
func (h *DiscountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف الخصم غير صالح", h.logger)
		return
	}

	var req updateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case model.DiscountStatusActive, model.DiscountStatusExpired, model.DiscountStatusDisabled:
		default:
			writeError(w, http.StatusBadRequest, "حالة الخصم غير صالحة", h.logger)
			return
		}
	}

	patch := model.DiscountPatch{
		Code:   optString(req.Code),
		Status: req.Status,
	}
	if v, ok := req.Percentage.float(); ok {
		patch.Percentage = &v
	}
	if v, ok := req.UsageLimit.int(); ok {
		patch.UsageLimit = &v
	}
	if v, ok := req.UsedCount.int(); ok {
		patch.UsedCount = &v
	}

	if err := h.service.Update(r.Context(), id, patch); err != nil {
		writeServiceError(w, err, "الخصم غير موجود", "فشل في تحديث الخصم", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم تحديث الخصم بنجاح"})
}

// Delete handles DELETE /api/discounts/{id} requests. The discount is
// disabled rather than removed, so usage history survives.
func (h *DiscountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف الخصم غير صالح", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "الخصم غير موجود", "فشل في حذف الخصم", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم حذف الخصم بنجاح"})
}

type redeemDiscountRequest struct {
	Code string `json:"code"`
}

// Redeem handles POST /api/discounts/redeem requests. One use of the
// code is consumed atomically; exhausted or inactive codes are
// rejected.
func (h *DiscountHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "كود الخصم مطلوب", h.logger)
		return
	}

	discount, err := h.service.Redeem(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, model.ErrDiscountUnavailable) {
			writeError(w, http.StatusConflict, "كود الخصم غير متاح", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "فشل في استخدام الخصم", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, discount)
}
