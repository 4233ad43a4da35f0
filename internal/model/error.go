package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Valid *bool  `json:"valid,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeEmptyPatch          = "EMPTY_PATCH"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken        = "INVALID_TOKEN"
	ErrCodeDiscountUnavailable = "DISCOUNT_UNAVAILABLE"
	ErrCodeUnsupportedFile     = "UNSUPPORTED_FILE"
	ErrCodeFileTooLarge        = "FILE_TOO_LARGE"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError(ErrCodeNotFound, "record not found")
	ErrEmptyPatch          = NewDomainError(ErrCodeEmptyPatch, "update contains no fields")
	ErrInvalidCredentials  = NewDomainError(ErrCodeInvalidCredentials, "invalid username or password")
	ErrInvalidToken        = NewDomainError(ErrCodeInvalidToken, "token is invalid or expired")
	ErrDiscountUnavailable = NewDomainError(ErrCodeDiscountUnavailable, "discount code is unknown, inactive or exhausted")
	ErrUnsupportedFile     = NewDomainError(ErrCodeUnsupportedFile, "unsupported file type")
	ErrFileTooLarge        = NewDomainError(ErrCodeFileTooLarge, "file exceeds the size limit")
)
