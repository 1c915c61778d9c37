package errors

import (
	"errors"
	"net/http"
)

// AppError is the single failure type crossing package boundaries. Code is
// one of the closed set below; StatusCode carries the upstream HTTP status
// for backend failures so callers branch on structure, not message text.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeAuthRequired = "AUTH_REQUIRED"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeTransport    = "TRANSPORT_ERROR"
	ErrCodeBackend      = "BACKEND_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

// AuthRequiredError is raised locally, before any network call, when an
// action needs a session and none is present.
func AuthRequiredError(message string) *AppError {
	return NewAppError(ErrCodeAuthRequired, message, http.StatusUnauthorized)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

// TransportError covers failures before any HTTP status exists: DNS, refused
// connections, interrupted bodies.
func TransportError(message string) *AppError {
	return NewAppError(ErrCodeTransport, message, http.StatusBadGateway)
}

// BackendError covers non-2xx responses from the backend API; statusCode is
// the upstream status, verbatim.
func BackendError(message string, statusCode int) *AppError {
	return NewAppError(ErrCodeBackend, message, statusCode)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// IsUnauthorized reports whether err is a backend rejection with status 401.
// Login relies on this instead of inspecting message text.
func IsUnauthorized(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.StatusCode == http.StatusUnauthorized
	}

	return false
}
