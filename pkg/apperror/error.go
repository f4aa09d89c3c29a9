package apperror

import "net/http"

type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation is a 400 carrying per-field messages.
func Validation(messages []string) *AppError {
	e := New(http.StatusBadRequest, "Validation failed", nil)
	e.Details = messages
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

func PayloadTooLarge(message string) *AppError {
	return New(http.StatusRequestEntityTooLarge, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

// BadGateway reports an upstream dependency (storage, analyzer) failure.
func BadGateway(message string, err error) *AppError {
	return New(http.StatusBadGateway, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
