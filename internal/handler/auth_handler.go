package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"menu-eva/internal/auth"
	"menu-eva/internal/model"
)

// AuthHandler handles admin login and token verification.
type AuthHandler struct {
	service *auth.Service
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *auth.Service, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    *auth.User `json:"user"`
}

// Login handles POST /api/admin/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "صيغة الطلب غير صالحة", h.logger)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "اسم المستخدم وكلمة المرور مطلوبان", h.logger)
		return
	}

	token, user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if err == model.ErrInvalidCredentials {
			writeError(w, http.StatusUnauthorized, "اسم المستخدم أو كلمة المرور غير صحيحة", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "حدث خطأ في الخادم", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "تم تسجيل الدخول بنجاح",
		Token:   token,
		User:    user,
	})
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Valid bool       `json:"valid"`
	User  *auth.User `json:"user"`
}

// Verify handles POST /api/admin/verify requests. The response always
// carries a valid flag so the dashboard can branch without inspecting
// status codes.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	invalid := false

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "صيغة الطلب غير صالحة", Valid: &invalid})
		return
	}

	if req.Token == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "التوكن مطلوب", Valid: &invalid})
		return
	}

	user, err := h.service.Verify(req.Token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Error: "التوكن غير صالح أو منتهي الصلاحية", Valid: &invalid})
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Valid: true, User: user})
}
