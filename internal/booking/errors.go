package booking

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateID         = errors.New("duplicate vehicle id")
	ErrDuplicatePlate      = errors.New("duplicate plate number")
	ErrNotAvailable        = errors.New("vehicle not available")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrAlreadyTerminal     = errors.New("reservation already terminal")
	ErrVehicleInUse        = errors.New("vehicle has active reservations")
	ErrMissingField        = errors.New("missing required field")
)
