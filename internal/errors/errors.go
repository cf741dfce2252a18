package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrMessageNotFound is returned when a message is not found or belongs to another user.
	ErrMessageNotFound = errors.New("message not found")
	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrTagNameTaken is returned when creating a tag whose name already exists.
	ErrTagNameTaken = errors.New("tag name is already taken")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidInput is returned when a required value is missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden is returned when the session user does not own the record.
	ErrForbidden = errors.New("forbidden")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors (possibly wrapped) to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error())
	case errors.Is(err, ErrMessageNotFound):
		return NewHTTPError(http.StatusNotFound, ErrMessageNotFound.Error())
	case errors.Is(err, ErrTagNotFound):
		return NewHTTPError(http.StatusNotFound, ErrTagNotFound.Error())
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, ErrUsernameTaken.Error())
	case errors.Is(err, ErrTagNameTaken):
		return NewHTTPError(http.StatusConflict, ErrTagNameTaken.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
