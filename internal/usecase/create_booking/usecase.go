package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	bookingRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/booking"
	settingsRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/settings"
)

// UseCase admits a new booking: validates the request against the
// current settings, recomputes the price server-side and commits the
// booking atomically against the store.
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the admission. The check-and-insert happens inside a
// serializable transaction with the day's rows locked, and the insert
// itself is conditional on the (date, time) unique index, so two
// concurrent requests for the same slot produce exactly one booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, services=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, len(req.ServiceIDs))

	// 1. Input validation, before the store is touched.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	phone := normalizePhone(req.Phone)
	serviceIDs := uniqueServiceIDs(req.ServiceIDs)
	customerName := strings.TrimSpace(req.CustomerName)

	now := uc.timeProvider.Now()

	// 2. Load the current settings; a stale client slot list must not
	// get a booking past the current config.
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("CreateBooking: settings not configured")
			return nil, ErrSlotClosed
		}
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Recompute the total price from the catalog.
	totalPrice, err := computeTotalPrice(serviceIDs, settings)
	if err != nil {
		uc.logger.Warn("CreateBooking: price computation failed: %v", err)
		return nil, err
	}

	// 4. Date within horizon.
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 5. The requested time must be a slot the current config generates.
	interval := settings.Interval()
	schedule := settings.WorkingHours.ForDate(req.Date)
	if err := validateSlotStart(schedule, interval, req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed for %s %s: %v",
			req.Date.Format(domain.DateFormat), req.StartTime, err)
		return nil, err
	}

	// 6. Minimum lead time for same-day slots.
	if err := validateLeadTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: lead time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 7. Atomic check-and-insert. GetByDate locks the day's bookings
	// (FOR UPDATE) inside the serializable transaction; the unique index
	// on (booking_date, start_time) backs the check as the second line
	// of defense.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range existing {
			if b.StartTime == req.StartTime {
				uc.logger.Warn("CreateBooking: slot %s %s already taken by booking id=%d",
					req.Date.Format(domain.DateFormat), req.StartTime, b.ID)
				return ErrSlotTaken
			}
		}

		booking := &domain.Booking{
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			CustomerName: customerName,
			Phone:        phone,
			ServiceIDs:   serviceIDs,
			TotalPrice:   totalPrice,
			Note:         req.Note,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: conditional insert lost the slot %s %s",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for %s %s",
		result.ID, result.DateString(), result.StartTime)

	return &Response{
		ID:           result.ID,
		Date:         result.BookingDate,
		StartTime:    result.StartTime,
		CustomerName: result.CustomerName,
		Phone:        result.Phone,
		ServiceIDs:   result.ServiceIDs,
		TotalPrice:   result.TotalPrice,
		Note:         result.Note,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
