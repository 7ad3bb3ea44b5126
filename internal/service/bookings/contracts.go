package bookings

import (
	"context"
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// BookingRepository is the storage surface the service needs.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListTimes(ctx context.Context) ([]domain.BookedTime, error)
	Delete(ctx context.Context, id int64) error
	DeleteDatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// TimeProvider supplies the current time (replaceable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs.
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
