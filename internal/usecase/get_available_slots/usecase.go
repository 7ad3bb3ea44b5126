package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	settingsRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/settings"
)

// UseCase computes the slots of a date, annotated with availability.
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

// Execute returns the slots of the requested date. Settings are re-read
// on every request so an admin update takes effect immediately.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		// An unconfigured shop has no opening hours, so no slots exist.
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetAvailableSlots: settings not configured, no slots for %s",
				req.Date.Format(domain.DateFormat))
			return &Response{
				Date:            req.Date,
				IntervalMinutes: domain.DefaultSlotIntervalMinutes,
				Slots:           []domain.Slot{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	interval := settings.Interval()
	schedule := settings.WorkingHours.ForDate(req.Date)

	slotTimes, err := generateSlotTimes(schedule, interval)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if len(slotTimes) == 0 {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			IntervalMinutes: interval,
			Slots:           []domain.Slot{},
		}, nil
	}

	bookedTimes, err := uc.bookingRepo.ListTimes(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	slots, err := annotateSlots(slotTimes, req.Date, now, bookedTimes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to annotate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to annotate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		IntervalMinutes: interval,
		Slots:           slots,
	}, nil
}
