package settings

import (
	"context"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// SettingsRepository is the storage surface the service needs.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
