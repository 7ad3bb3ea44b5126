package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate is returned when the requested date is in the past.
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture is returned when the requested date is beyond
	// the booking horizon.
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is beyond the booking horizon")

	// ErrInternal is returned for internal failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
