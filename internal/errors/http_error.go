package errors

import (
	"errors"
	"net/http"

	"rentacar/internal/booking"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
)

// StatusForError maps booking errors to HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrDuplicateID),
		errors.Is(err, booking.ErrDuplicatePlate),
		errors.Is(err, booking.ErrReservationConflict),
		errors.Is(err, booking.ErrNotAvailable),
		errors.Is(err, booking.ErrAlreadyTerminal),
		errors.Is(err, booking.ErrVehicleInUse):
		return http.StatusConflict
	case errors.Is(err, booking.ErrInvalidDateFormat),
		errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrMissingField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
