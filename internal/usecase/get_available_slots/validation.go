package get_available_slots

import (
	"fmt"
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// validateRequest validates the request data.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate checks that the date lies within the booking horizon:
// not in the past and at most BookingHorizonDays-1 days ahead of today.
// Calendar dates are compared as YYYY-MM-DD strings, never as instants:
// midnight instants across zones disagree on the day boundary.
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, domain.BookingHorizonDays-1)

	if date.Format(domain.DateFormat) > maxDate.Format(domain.DateFormat) {
		return fmt.Errorf("%w: slots are offered %d days ahead", ErrDateTooFarInFuture, domain.BookingHorizonDays)
	}

	return nil
}
