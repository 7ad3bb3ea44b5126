package get_available_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	settingsRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/settings"
)

// UseCase evaluates the booking horizon day by day and picks the first
// day a fresh session should have selected.
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute evaluates exactly the next BookingHorizonDays calendar days
// starting today and marks each as available when it has at least one
// selectable slot.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetAvailableDays: settings not configured, no days available")
			return closedHorizon(today), nil
		}
		uc.logger.Error("GetAvailableDays: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	bookedTimes, err := uc.bookingRepo.ListTimes(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	byDate := bookedTimesByDate(bookedTimes)
	interval := settings.Interval()

	days := make([]domain.DayAvailability, 0, domain.BookingHorizonDays)
	var firstAvailable *time.Time

	for i := 0; i < domain.BookingHorizonDays; i++ {
		date := today.AddDate(0, 0, i)
		schedule := settings.WorkingHours.ForDate(date)

		available, err := dayHasFreeSlot(schedule, interval, date, now, byDate[date.Format(domain.DateFormat)])
		if err != nil {
			uc.logger.Error("GetAvailableDays: failed to evaluate %s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to evaluate day: %v", ErrInternal, err)
		}

		days = append(days, domain.DayAvailability{Date: date, Available: available})

		if available && firstAvailable == nil {
			d := date
			firstAvailable = &d
		}
	}

	if firstAvailable != nil {
		uc.logger.Info("GetAvailableDays: first available date is %s", firstAvailable.Format(domain.DateFormat))
	} else {
		uc.logger.Info("GetAvailableDays: no available dates in the next %d days", domain.BookingHorizonDays)
	}

	return &Response{
		Days:           days,
		FirstAvailable: firstAvailable,
	}, nil
}

func closedHorizon(today time.Time) *Response {
	days := make([]domain.DayAvailability, 0, domain.BookingHorizonDays)
	for i := 0; i < domain.BookingHorizonDays; i++ {
		days = append(days, domain.DayAvailability{Date: today.AddDate(0, 0, i), Available: false})
	}
	return &Response{Days: days}
}
