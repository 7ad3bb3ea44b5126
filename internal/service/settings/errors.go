package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when no settings row exists yet.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrUnauthorized is returned when the admin password does not match.
	ErrUnauthorized = errors.New("admin password does not match")

	// ErrInvalidInput is returned for invalid settings values.
	ErrInvalidInput = errors.New("invalid settings data")

	// ErrInternal is returned for internal service failures.
	ErrInternal = errors.New("settings service: internal error")
)
