package get_available_slots

import (
	"context"
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// BookingRepository is the read surface this use case needs.
// Only the PII-free times projection is consumed here.
type BookingRepository interface {
	ListTimes(ctx context.Context) ([]domain.BookedTime, error)
}

// SettingsRepository loads the business settings aggregate.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// TimeProvider supplies the current time (replaceable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
