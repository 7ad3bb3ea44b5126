package get_available_days

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// dayHasFreeSlot reports whether at least one slot of the given date is
// selectable: inside working hours, not occupied, and for today not
// within the minimum lead time.
func dayHasFreeSlot(
	schedule domain.DaySchedule,
	intervalMinutes int,
	date time.Time,
	now time.Time,
	booked map[types.TimeString]bool,
) (bool, error) {
	if !schedule.IsOpen || schedule.Opening == "" || schedule.Closing == "" {
		return false, nil
	}

	openTime, err := types.NewTimeStringFromString(schedule.Opening)
	if err != nil {
		return false, err
	}
	closeTime, err := types.NewTimeStringFromString(schedule.Closing)
	if err != nil {
		return false, err
	}

	isToday := isSameDay(date, now)

	var minAllowed types.TimeString
	if isToday {
		minAllowed, err = types.NewTimeString(now).AddMinutes(domain.MinLeadTimeMinutes)
		if err != nil {
			return false, err
		}
	}

	current := openTime
	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			return false, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		tooSoon := isToday && !current.IsAfter(minAllowed)
		if !tooSoon && !booked[current] {
			return true, nil
		}

		current = slotEnd
	}

	return false, nil
}

// bookedTimesByDate groups occupied start times by their local
// YYYY-MM-DD date string.
func bookedTimesByDate(bookedTimes []domain.BookedTime) map[string]map[types.TimeString]bool {
	byDate := make(map[string]map[types.TimeString]bool)
	for _, bt := range bookedTimes {
		dateStr := bt.Date.Format(domain.DateFormat)
		if byDate[dateStr] == nil {
			byDate[dateStr] = make(map[types.TimeString]bool)
		}
		byDate[dateStr][bt.Time] = true
	}
	return byDate
}

// isSameDay reports whether two timestamps fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
