package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"menu-eva/internal/model"
)

// messageResponse is the body of a successful mutation. ID is only set
// for creations.
type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps domain errors to HTTP responses. notFound and
// fallback carry the user-facing messages for 404 and 500.
func writeServiceError(w http.ResponseWriter, err error, notFound, fallback string, logger zerolog.Logger) {
	var derr *model.DomainError
	if errors.As(err, &derr) {
		switch derr.Code {
		case model.ErrCodeNotFound:
			writeError(w, http.StatusNotFound, notFound, logger)
			return
		case model.ErrCodeEmptyPatch:
			writeError(w, http.StatusBadRequest, "لا توجد حقول للتحديث", logger)
			return
		}
	}
	writeError(w, http.StatusInternalServerError, fallback, logger)
}

// parseID extracts the numeric {id} path parameter.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// number accepts both JSON numbers and numeric strings, the way
// form-driven dashboards tend to send them. The zero value means the
// field was absent or empty.
type number string

// UnmarshalJSON stores the raw token with quotes stripped; null becomes
// the zero value.
func (n *number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	*n = number(s)
	return nil
}

func (n number) empty() bool { return n == "" }

func (n number) float() (float64, bool) {
	f, err := strconv.ParseFloat(string(n), 64)
	return f, err == nil
}

func (n number) int() (int, bool) {
	i, err := strconv.Atoi(string(n))
	return i, err == nil
}

func (n number) int64() (int64, bool) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	return i, err == nil
}

// parseDate accepts dates as sent by the dashboard, either a bare
// calendar date or a full RFC 3339 timestamp. Empty input yields nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unrecognised date format: " + s)
}

// optString turns an optional request field into a nullable column
// value: absent stays nil, empty string becomes nil too.
func optString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
