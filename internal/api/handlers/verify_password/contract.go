package verify_password

import "context"

type SettingsService interface {
	VerifyPassword(ctx context.Context, password string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
