package get_booked_times

import (
	"context"

	"github.com/hsnkrlr/berber-randevu/internal/service/bookings/models"
)

type BookingsService interface {
	ListTimes(ctx context.Context) ([]models.BookedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
