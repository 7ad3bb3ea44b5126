package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	settingsRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/settings"
	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

type fakeBookingRepo struct {
	times []domain.BookedTime
	err   error
}

func (f *fakeBookingRepo) ListTimes(ctx context.Context) ([]domain.BookedTime, error) {
	return f.times, f.err
}

type fakeSettingsRepo struct {
	settings *domain.Settings
	err      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func allWeekSchedule(opening, closing string) domain.WeekSchedule {
	day := domain.DaySchedule{IsOpen: true, Opening: opening, Closing: closing}
	return domain.WeekSchedule{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, settings *fakeSettingsRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, settings, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// 2026-03-09 is a Monday.
var testNow = time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)

func TestExecute_GeneratesSlotsWithinWorkingHours(t *testing.T) {
	settings := &domain.Settings{
		SlotIntervalMinutes: 30,
		WorkingHours:        allWeekSchedule("09:00", "12:00"),
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, testNow)

	// Ask for tomorrow so the lead time rule stays out of the way.
	resp, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.IntervalMinutes)

	want := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	require.Len(t, resp.Slots, len(want))
	for i, slot := range resp.Slots {
		assert.Equal(t, want[i], slot.Time)
		assert.False(t, slot.Disabled, "slot %s should be enabled", slot.Time)
	}
}

func TestExecute_DropsSlotThatWouldPassClosing(t *testing.T) {
	settings := &domain.Settings{
		SlotIntervalMinutes: 45,
		WorkingHours:        allWeekSchedule("09:00", "10:30"),
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, 1)})
	require.NoError(t, err)

	// 10:30 + 45 min would pass closing, so only two slots remain.
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("09:45"), resp.Slots[1].Time)
}

func TestExecute_ClosedDayYieldsEmptySlots(t *testing.T) {
	settings := &domain.Settings{
		SlotIntervalMinutes: 30,
		WorkingHours:        domain.WeekSchedule{}, // closed all week
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testNow})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_LeadTimeDisablesTodaySlots(t *testing.T) {
	settings := &domain.Settings{
		SlotIntervalMinutes: 30,
		WorkingHours:        allWeekSchedule("09:00", "12:00"),
	}
	// Now is 08:30, so the minimum lead time puts the boundary at 09:30.
	now := time.Date(2026, 3, 9, 8, 30, 0, 0, time.Local)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: now})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)

	byTime := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		byTime[slot.Time] = slot.Disabled
	}

	assert.True(t, byTime["09:00"], "09:00 is in the past of the lead window")
	assert.True(t, byTime["09:30"], "a slot exactly at now + lead time is still too soon")
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["11:30"])
}

func TestExecute_BookedSlotIsDisabled(t *testing.T) {
	date := testNow.AddDate(0, 0, 2)
	settings := &domain.Settings{
		SlotIntervalMinutes: 30,
		WorkingHours:        allWeekSchedule("09:00", "11:00"),
	}
	bookings := &fakeBookingRepo{times: []domain.BookedTime{
		{Date: date, Time: "10:00"},
		{Date: date.AddDate(0, 0, 1), Time: "09:00"}, // other day, must not leak
	}}
	uc := newTestUseCase(bookings, &fakeSettingsRepo{settings: settings}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.Time == "10:00" {
			assert.True(t, slot.Disabled)
		} else {
			assert.False(t, slot.Disabled, "slot %s should stay enabled", slot.Time)
		}
	}
}

func TestExecute_RepeatedCallsReturnSameSlots(t *testing.T) {
	settings := &domain.Settings{
		SlotIntervalMinutes: 30,
		WorkingHours:        allWeekSchedule("09:00", "12:00"),
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, testNow)
	req := &Request{Date: testNow.AddDate(0, 0, 1)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: &domain.Settings{}}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateBeyondHorizonRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: &domain.Settings{}}, testNow)

	// Day 7 counted from today is the first day outside the horizon.
	_, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, domain.BookingHorizonDays)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_LastHorizonDayAccepted(t *testing.T) {
	settings := &domain.Settings{
		SlotIntervalMinutes: 30,
		WorkingHours:        allWeekSchedule("09:00", "10:00"),
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, domain.BookingHorizonDays-1)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestExecute_UnconfiguredShopHasNoSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testNow,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testNow})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestValidateDate_MixedZones(t *testing.T) {
	istanbul := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, istanbul)

	// A UTC-midnight date on the last horizon day must pass.
	lastDay, err := time.Parse(domain.DateFormat, "2026-03-15")
	require.NoError(t, err)
	assert.NoError(t, validateDate(lastDay, now))

	lima := time.FixedZone("UTC-5", -5*60*60)
	nowWest := time.Date(2026, 3, 9, 10, 0, 0, 0, lima)

	today, err := time.Parse(domain.DateFormat, "2026-03-09")
	require.NoError(t, err)
	assert.NoError(t, validateDate(today, nowWest))
}

func TestExecute_MissingDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: &domain.Settings{}}, testNow)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
