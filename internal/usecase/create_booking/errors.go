package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for a malformed name, phone or service
	// selection. Rejected before the store is touched.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownService is returned when a requested service id is not in
	// the current catalog.
	ErrUnknownService = errors.New("create_booking: unknown service")

	// ErrInvalidDate is returned when the booking date is in the past.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture is returned when the date is beyond the
	// booking horizon.
	ErrDateTooFarInFuture = errors.New("create_booking: date is beyond the booking horizon")

	// ErrSlotClosed is returned when the day is closed or the time is not
	// a slot the current config generates.
	ErrSlotClosed = errors.New("create_booking: slot is outside business hours")

	// ErrTooLateToBook is returned when a same-day slot violates the
	// minimum lead time.
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotTaken is returned when an active booking already occupies
	// the slot. Kept distinct from storage failures so callers can offer
	// another time instead of a retry.
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInternal is returned for internal failures.
	ErrInternal = errors.New("create_booking: internal error")
)
