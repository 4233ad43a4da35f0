package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"menu-eva/internal/model"
	"menu-eva/internal/service"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests, optionally filtered with
// the category_id query parameter.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var categoryID int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, ok := number(raw).int64()
		if !ok {
			writeError(w, http.StatusBadRequest, "معرف الصنف غير صالح", h.logger)
			return
		}
		categoryID = id
	}

	products, err := h.service.GetAll(r.Context(), categoryID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في جلب المنتجات", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetBestsellers handles GET /api/products/bestsellers requests.
func (h *ProductHandler) GetBestsellers(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetBestsellers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في جلب المنتجات الأكثر مبيعاً", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف المنتج غير صالح", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "المنتج غير موجود", "فشل في جلب المنتج", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

type createProductRequest struct {
	Name          string  `json:"name"`
	NameEn        *string `json:"name_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	Price         number  `json:"price"`
	OriginalPrice number  `json:"original_price"`
	Calories      number  `json:"calories"`
	ImageURL      *string `json:"image_url"`
	CategoryID    number  `json:"category_id"`
	DisplayOrder  number  `json:"display_order"`
	IsBestseller  bool    `json:"is_bestseller"`
	IsNew         bool    `json:"is_new"`
	NewUntilDate  string  `json:"new_until_date"`
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	price, priceOK := req.Price.float()
	categoryID, categoryOK := req.CategoryID.int64()
	if req.Name == "" || !priceOK || !categoryOK {
		writeError(w, http.StatusBadRequest, "الاسم والسعر والصنف مطلوبة", h.logger)
		return
	}

	newUntil, err := parseDate(req.NewUntilDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "تاريخ انتهاء تاج جديد غير صالح", h.logger)
		return
	}

	p := model.NewProduct{
		Name:          req.Name,
		NameEn:        optString(req.NameEn),
		Description:   optString(req.Description),
		DescriptionEn: optString(req.DescriptionEn),
		Price:         price,
		ImageURL:      optString(req.ImageURL),
		CategoryID:    categoryID,
		IsBestseller:  req.IsBestseller,
		IsNew:         req.IsNew,
		NewUntilDate:  newUntil,
	}
	if v, ok := req.OriginalPrice.float(); ok {
		p.OriginalPrice = &v
	}
	if v, ok := req.Calories.int(); ok {
		p.Calories = &v
	}
	if v, ok := req.DisplayOrder.int(); ok {
		p.DisplayOrder = v
	}

	id, err := h.service.Create(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "فشل في إضافة المنتج", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "تم إضافة المنتج بنجاح", ID: id})
}

type updateProductRequest struct {
	Name          *string `json:"name"`
	NameEn        *string `json:"name_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	Price         number  `json:"price"`
	OriginalPrice number  `json:"original_price"`
	Calories      number  `json:"calories"`
	ImageURL      *string `json:"image_url"`
	CategoryID    number  `json:"category_id"`
	DisplayOrder  number  `json:"display_order"`
	IsAvailable   *bool   `json:"is_available"`
	IsFeatured    *bool   `json:"is_featured"`
	IsBestseller  *bool   `json:"is_bestseller"`
	IsNew         *bool   `json:"is_new"`
	NewUntilDate  *string `json:"new_until_date"`
}

// Update handles PUT /api/products/{id} requests. Only the fields
// present in the body are applied; sending new_until_date as an empty
// string clears the badge expiry.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف المنتج غير صالح", h.logger)
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	patch := model.ProductPatch{
		Name:          optString(req.Name),
		NameEn:        req.NameEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		ImageURL:      optString(req.ImageURL),
		IsAvailable:   req.IsAvailable,
		IsFeatured:    req.IsFeatured,
		IsBestseller:  req.IsBestseller,
		IsNew:         req.IsNew,
	}
	if v, ok := req.Price.float(); ok {
		patch.Price = &v
	}
	if v, ok := req.OriginalPrice.float(); ok {
		patch.OriginalPrice = &v
	}
	if v, ok := req.Calories.int(); ok {
		patch.Calories = &v
	}
	if v, ok := req.CategoryID.int64(); ok {
		patch.CategoryID = &v
	}
	if v, ok := req.DisplayOrder.int(); ok {
		patch.DisplayOrder = &v
	}
	if req.NewUntilDate != nil {
		if *req.NewUntilDate == "" {
			patch.ClearNewUntil = true
		} else {
			until, err := parseDate(*req.NewUntilDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "تاريخ انتهاء تاج جديد غير صالح", h.logger)
				return
			}
			patch.NewUntilDate = until
		}
	}

	if err := h.service.Update(r.Context(), id, patch); err != nil {
		writeServiceError(w, err, "المنتج غير موجود", "فشل في تحديث المنتج", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم تحديث المنتج بنجاح"})
}

// Delete handles DELETE /api/products/{id} requests. Products are
// removed permanently, not hidden.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "معرف المنتج غير صالح", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "المنتج غير موجود", "فشل في حذف المنتج", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "تم حذف المنتج بنجاح"})
}
