package get_available_days

import "errors"

var (
	// ErrInternal is returned for internal failures.
	ErrInternal = errors.New("get_available_days: internal error")
)
