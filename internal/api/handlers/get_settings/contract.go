package get_settings

import (
	"context"

	"github.com/hsnkrlr/berber-randevu/internal/service/settings/models"
)

type SettingsService interface {
	GetPublic(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
