package get_available_slots

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// generateSlotTimes generates every candidate slot start for a day,
// from opening in steps of the configured interval. A slot whose end
// would pass closing time is dropped, so the final slot always fits
// inside working hours.
func generateSlotTimes(schedule domain.DaySchedule, intervalMinutes int) ([]types.TimeString, error) {
	if !schedule.IsOpen || schedule.Opening == "" || schedule.Closing == "" {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromString(schedule.Opening)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(schedule.Closing)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}

// annotateSlots marks each slot as disabled when it is too soon to book
// (today only: start not after now + minimum lead time) or when an active
// booking already occupies the same (date, time).
func annotateSlots(
	slotTimes []types.TimeString,
	date time.Time,
	now time.Time,
	bookedTimes []domain.BookedTime,
) ([]domain.Slot, error) {
	isToday := isSameDay(date, now)

	var minAllowed types.TimeString
	if isToday {
		var err error
		minAllowed, err = types.NewTimeString(now).AddMinutes(domain.MinLeadTimeMinutes)
		if err != nil {
			return nil, err
		}
	}

	booked := bookedTimesForDate(bookedTimes, date)

	slots := make([]domain.Slot, len(slotTimes))
	for i, slotTime := range slotTimes {
		// A slot starting exactly at now + lead time is still too soon.
		tooSoon := isToday && !slotTime.IsAfter(minAllowed)
		slots[i] = domain.Slot{
			Time:     slotTime,
			Disabled: tooSoon || booked[slotTime],
		}
	}

	return slots, nil
}

// bookedTimesForDate returns the set of occupied start times for a date.
// Dates are compared in their local YYYY-MM-DD form so a booking never
// shifts to a neighbouring day across timezones.
func bookedTimesForDate(bookedTimes []domain.BookedTime, date time.Time) map[types.TimeString]bool {
	dateStr := date.Format(domain.DateFormat)

	booked := make(map[types.TimeString]bool)
	for _, bt := range bookedTimes {
		if bt.Date.Format(domain.DateFormat) == dateStr {
			booked[bt.Time] = true
		}
	}

	return booked
}

// isSameDay reports whether two timestamps fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date falls on a calendar day before
// today, compared as YYYY-MM-DD strings.
func isDateInPast(date, now time.Time) bool {
	return date.Format(domain.DateFormat) < now.Format(domain.DateFormat)
}
