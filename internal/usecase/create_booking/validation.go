package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

var phoneRegexp = regexp.MustCompile(domain.PhonePattern)

// validateRequest validates the request data. The phone is validated in
// its normalized digits-only form.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if !phoneRegexp.MatchString(normalizePhone(req.Phone)) {
		return fmt.Errorf("%w: phone must be 10 digits starting with 5", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Note != nil && len([]rune(*req.Note)) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// normalizePhone strips everything except digits, so "0532 123 45 67"
// style input collapses to the stored digits-only form.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// uniqueServiceIDs deduplicates the requested service id set, keeping
// the original order.
func uniqueServiceIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}

// computeTotalPrice resolves each service id against the current catalog
// and sums the prices. The client-submitted total is never trusted.
func computeTotalPrice(serviceIDs []int64, settings *domain.Settings) (float64, error) {
	var total float64
	for _, id := range serviceIDs {
		svc, ok := settings.ServiceByID(id)
		if !ok {
			return 0, fmt.Errorf("%w: id=%d", ErrUnknownService, id)
		}
		total += svc.Price
	}
	return total, nil
}

// validateDate checks that the date lies within the booking horizon.
// Calendar dates are compared as local YYYY-MM-DD strings, never as
// instants: the request date and now may carry different locations,
// and midnight instants across zones disagree on the day boundary.
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, domain.BookingHorizonDays-1)

	if date.Format(domain.DateFormat) > maxDate.Format(domain.DateFormat) {
		return fmt.Errorf("%w: bookings are accepted %d days ahead", ErrDateTooFarInFuture, domain.BookingHorizonDays)
	}

	return nil
}

// validateSlotStart checks the requested time against the slots the
// current config actually generates: aligned to the interval grid from
// opening, and ending no later than closing. Defends against stale
// client-side slot lists.
func validateSlotStart(schedule domain.DaySchedule, intervalMinutes int, start types.TimeString) error {
	if !schedule.IsOpen || schedule.Opening == "" || schedule.Closing == "" {
		return ErrSlotClosed
	}

	openTime, err := types.NewTimeStringFromString(schedule.Opening)
	if err != nil {
		return fmt.Errorf("%w: invalid opening time in settings: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(schedule.Closing)
	if err != nil {
		return fmt.Errorf("%w: invalid closing time in settings: %v", ErrInternal, err)
	}

	if start.IsBefore(openTime) {
		return ErrSlotClosed
	}

	slotEnd, err := start.AddMinutes(intervalMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if slotEnd.IsAfter(closeTime) {
		return ErrSlotClosed
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	openMinutes, err := openTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if (startMinutes-openMinutes)%intervalMinutes != 0 {
		return ErrSlotClosed
	}

	return nil
}

// validateLeadTime rejects same-day slots starting within the minimum
// lead time. A slot starting exactly at now + lead time is too soon.
func validateLeadTime(date time.Time, start types.TimeString, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(domain.MinLeadTimeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to compute minimum lead time: %v", ErrInternal, err)
	}

	if !start.IsAfter(minAllowed) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, domain.MinLeadTimeMinutes)
	}

	return nil
}

// isSameDay reports whether two timestamps fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date falls on a calendar day before
// today. Compared as YYYY-MM-DD strings for the same reason as
// validateDate.
func isDateInPast(date, now time.Time) bool {
	return date.Format(domain.DateFormat) < now.Format(domain.DateFormat)
}
