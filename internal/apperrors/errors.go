package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no valid session or credential was presented.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the session is valid but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates that the stored refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrInvalidMoney indicates that a stored price is not a usable non-negative
// amount. Callers render a placeholder instead of propagating it.
var ErrInvalidMoney = errors.New("invalid money amount")

// AppError carries an HTTP-equivalent code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
