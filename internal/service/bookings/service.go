package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	bookingRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/booking"
	"github.com/hsnkrlr/berber-randevu/internal/service/bookings/models"
)

// Service covers the booking operations outside admission: admin
// listing and deletion, the public times-only projection, and the
// retention sweep.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListAll returns every booking ordered by (date, time), phones masked.
// Admin only; the handler layer enforces authentication.
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListTimes returns the (date, time) pairs of all bookings. This is the
// only booking data the public availability computation ever sees.
func (s *Service) ListTimes(ctx context.Context) ([]models.BookedTimeResponse, error) {
	times, err := s.bookingRepo.ListTimes(ctx)
	if err != nil {
		s.logger.Error("ListTimes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTimes - repository error: %v", ErrInternal, err)
	}

	out := make([]models.BookedTimeResponse, len(times))
	for i, bt := range times {
		out[i] = models.FromDomainBookedTime(bt)
	}

	return out, nil
}

// Delete removes a booking by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking id=%d", id)
	return nil
}

// PruneExpired deletes bookings dated strictly before midnight of
// today minus the retention window. Bookings for today and yesterday
// are always kept. Idempotent and safe to run concurrently with other
// store access; failures are logged and surfaced but not fatal.
func (s *Service) PruneExpired(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -domain.RetentionDays)

	deleted, err := s.bookingRepo.DeleteDatedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("PruneExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: PruneExpired - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("PruneExpired: removed %d bookings dated before %s",
			deleted, cutoff.Format(domain.DateFormat))
	}

	return deleted, nil
}
