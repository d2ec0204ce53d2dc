package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeUpstreamError = "UPSTREAM_ERROR"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
)

// AppError is an error that knows which HTTP status it maps to.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Cause      error  `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Upstream wraps a collaborator failure. The cause text is appended to the
// message so callers see what went wrong on the other side.
func Upstream(prefix string, cause error) *AppError {
	e := New(CodeUpstreamError, prefix, http.StatusInternalServerError)
	if cause != nil {
		e.Message = fmt.Sprintf("%s: %s", prefix, cause.Error())
		e.Cause = cause
	}
	return e
}

// As reports whether err carries an *AppError and returns it.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an *AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

var ErrInternalServer = New(CodeInternal, "Internal server error", http.StatusInternalServerError)
