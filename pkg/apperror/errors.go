package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
	// Fields carries per-field validation messages.
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithFields returns a copy of e carrying per-field messages.
func (e *AppError) WithFields(fields map[string]string) *AppError {
	cp := *e
	cp.Fields = fields
	return &cp
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Settlement (SET) ----

func ErrInvalidArgument(message string) *AppError {
	return New("SET_001", message, http.StatusBadRequest)
}

func ErrInsufficientPayment(message string) *AppError {
	return New("SET_002", message, http.StatusUnprocessableEntity)
}

func ErrSubmissionFailed(message string, err error) *AppError {
	return Wrap("SET_003", message, http.StatusBadGateway, err)
}

func ErrSubmissionInFlight() *AppError {
	return New("SET_004", "Settlement submission already in flight", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("SET_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAttemptClosed() *AppError {
	return New("SET_006", "Settlement attempt is closed", http.StatusConflict)
}

func ErrAttemptBusy() *AppError {
	return New("SET_007", "Settlement attempt is being confirmed", http.StatusConflict)
}

func ErrVersionConflict() *AppError {
	return New("SET_008", "Settlement attempt was modified concurrently, reload and retry", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrMissingToken() *AppError {
	return New("AUTH_001", "Missing session token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Session does not grant access to this resource", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrPayloadTooLarge() *AppError {
	return New("RATE_002", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrCacheError(err error) *AppError {
	return Wrap("SYS_002", "Internal cache error", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a SET_001 validation error.
func Validation(message string) *AppError {
	return ErrInvalidArgument(message)
}
