package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the settings row is missing.
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrEncode is returned when encoding a JSONB column fails.
	ErrEncode = errors.New("settings.repository: failed to encode settings")

	// ErrDecode is returned when decoding a JSONB column fails.
	ErrDecode = errors.New("settings.repository: failed to decode settings")
)
