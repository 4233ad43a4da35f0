package handler

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"menu-eva/internal/config"
	"menu-eva/internal/storage"
)

// allowedImageTypes are the MIME types the dashboard may upload.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadHandler handles image uploads from the admin dashboard.
type UploadHandler struct {
	store  *storage.Cascade
	cfg    config.UploadConfig
	logger zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store *storage.Cascade, cfg config.UploadConfig, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		cfg:    cfg,
		logger: logger.With().Str("handler", "upload").Logger(),
	}
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Message  string `json:"message"`
}

// Upload handles POST /api/upload requests. The multipart form carries
// the file and a type field selecting the target folder, products or
// banners.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Leave headroom over the configured limit so oversized files get a
	// proper error body instead of a connection reset.
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxSizeBytes+1024*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "لم يتم اختيار ملف", h.logger)
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxSizeBytes {
		writeError(w, http.StatusBadRequest, "حجم الملف كبير جداً. الحد الأقصى 5MB", h.logger)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read uploaded file")
		writeError(w, http.StatusInternalServerError, "حدث خطأ أثناء رفع الملف", h.logger)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !allowedImageTypes[contentType] {
		writeError(w, http.StatusBadRequest, "نوع الملف غير مدعوم. يرجى اختيار صورة (JPG, PNG, WebP)", h.logger)
		return
	}

	kind := r.FormValue("type")
	if kind != "banners" {
		kind = "products"
	}

	url, err := h.store.Store(r.Context(), storage.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Kind:        kind,
		Data:        data,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("failed to store upload")
		writeError(w, http.StatusInternalServerError, "حدث خطأ أثناء رفع الملف", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success:  true,
		ImageURL: url,
		Message:  "تم رفع الصورة بنجاح",
	})
}
