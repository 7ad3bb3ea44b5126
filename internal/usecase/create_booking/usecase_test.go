package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	bookingRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/booking"
	settingsRepo "github.com/hsnkrlr/berber-randevu/internal/infra/storage/settings"
	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// fakeBookingRepo mimics the store's admission guarantee: the slot
// check and the insert happen under one lock, and a duplicate
// (date, time) insert fails the same way the unique index would.
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.bookings {
		if b.DateString() == booking.DateString() && b.StartTime == booking.StartTime {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)

	result := created
	return &result, nil
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	dateStr := date.Format(domain.DateFormat)
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.DateString() == dateStr {
			out = append(out, b)
		}
	}
	return out, nil
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

// passthroughTxManager just runs the callback. The fake repository
// provides the atomicity a real transaction would.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testSettings() *domain.Settings {
	return &domain.Settings{
		SlotIntervalMinutes: 30,
		WorkingHours:        allWeekSchedule("09:00", "18:00"),
		Services: []domain.Service{
			{ID: 1, Name: "Saç Kesimi", Price: 250},
			{ID: 2, Name: "Sakal", Price: 100},
		},
	}
}

var testNow = time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)

func newTestUseCase(repo *fakeBookingRepo, settings *fakeSettingsRepo) *UseCase {
	uc := NewUseCase(repo, settings, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Ahmet Yılmaz",
		Phone:        "532 123 45 67",
		ServiceIDs:   []int64{1, 2},
		Date:         testNow.AddDate(0, 0, 1),
		StartTime:    "10:00",
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeSettingsRepo{settings: testSettings()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, "Ahmet Yılmaz", resp.CustomerName)
	assert.Equal(t, "5321234567", resp.Phone, "phone is stored digits-only")
	assert.Equal(t, 350.0, resp.TotalPrice, "price comes from the catalog, not the client")
	assert.Equal(t, []int64{1, 2}, resp.ServiceIDs)
}

func TestExecute_DeduplicatesServiceIDs(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeSettingsRepo{settings: testSettings()})

	req := validRequest()
	req.ServiceIDs = []int64{1, 1, 2, 1}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.ServiceIDs)
	assert.Equal(t, 350.0, resp.TotalPrice)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(req *Request) { req.CustomerName = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name: "name too long",
			mutate: func(req *Request) {
				long := make([]rune, domain.MaxCustomerNameLength+1)
				for i := range long {
					long[i] = 'a'
				}
				req.CustomerName = string(long)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "phone not starting with 5",
			mutate:  func(req *Request) { req.Phone = "2121234567" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "phone too short",
			mutate:  func(req *Request) { req.Phone = "532123" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no services",
			mutate:  func(req *Request) { req.ServiceIDs = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			mutate:  func(req *Request) { req.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing start time",
			mutate:  func(req *Request) { req.StartTime = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			mutate:  func(req *Request) { req.StartTime = "10am" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown service",
			mutate:  func(req *Request) { req.ServiceIDs = []int64{99} },
			wantErr: ErrUnknownService,
		},
		{
			name:    "past date",
			mutate:  func(req *Request) { req.Date = testNow.AddDate(0, 0, -1) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date beyond horizon",
			mutate:  func(req *Request) { req.Date = testNow.AddDate(0, 0, domain.BookingHorizonDays) },
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "before opening",
			mutate:  func(req *Request) { req.StartTime = "08:30" },
			wantErr: ErrSlotClosed,
		},
		{
			name:    "slot would pass closing",
			mutate:  func(req *Request) { req.StartTime = "17:45" },
			wantErr: ErrSlotClosed,
		},
		{
			name:    "off the interval grid",
			mutate:  func(req *Request) { req.StartTime = "10:15" },
			wantErr: ErrSlotClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: testSettings()})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_LeadTimeBoundary(t *testing.T) {
	// Now is 08:00; the minimum lead time puts the boundary at 09:00.
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: testSettings()})

	req := validRequest()
	req.Date = testNow
	req.StartTime = "09:00"

	// Exactly at now + lead time is still too soon.
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	req.StartTime = "09:30"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeSettingsRepo{settings: testSettings()})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Same slot, different customer.
	req := validRequest()
	req.CustomerName = "Mehmet Demir"
	req.Phone = "5419876543"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// A different slot is still free.
	req.StartTime = "10:30"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentAdmission(t *testing.T) {
	repo := &fakeBookingRepo{}
	settings := &fakeSettingsRepo{settings: testSettings()}

	const attempts = 10

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uc := newTestUseCase(repo, settings)
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			taken++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one request wins the slot")
	assert.Equal(t, attempts-1, taken)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_UnconfiguredShopRejectsBooking(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotClosed)
}

func TestExecute_ClosedDayRejectsBooking(t *testing.T) {
	settings := testSettings()
	settings.WorkingHours.Tuesday = domain.DaySchedule{IsOpen: false}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings})

	req := validRequest() // tomorrow is Tuesday
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotClosed)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5321234567", normalizePhone("532 123 45 67"))
	assert.Equal(t, "5321234567", normalizePhone("532-123-45-67"))
	assert.Equal(t, "5321234567", normalizePhone("5321234567"))
	assert.Equal(t, "", normalizePhone("abc"))
}

func TestValidateDate_MixedZones(t *testing.T) {
	// A date that arrives as a UTC midnight must be judged by its
	// calendar day, not its instant, regardless of the server zone.
	istanbul := time.FixedZone("UTC+3", 3*60*60)
	nowEast := time.Date(2026, 3, 9, 10, 0, 0, 0, istanbul)

	lastDay, err := time.Parse(domain.DateFormat, "2026-03-15")
	require.NoError(t, err)
	assert.NoError(t, validateDate(lastDay, nowEast), "the 7th horizon day is bookable")

	beyond, err := time.Parse(domain.DateFormat, "2026-03-16")
	require.NoError(t, err)
	assert.ErrorIs(t, validateDate(beyond, nowEast), ErrDateTooFarInFuture)

	lima := time.FixedZone("UTC-5", -5*60*60)
	nowWest := time.Date(2026, 3, 9, 10, 0, 0, 0, lima)

	today, err := time.Parse(domain.DateFormat, "2026-03-09")
	require.NoError(t, err)
	assert.NoError(t, validateDate(today, nowWest), "today is bookable west of UTC")

	yesterday, err := time.Parse(domain.DateFormat, "2026-03-08")
	require.NoError(t, err)
	assert.ErrorIs(t, validateDate(yesterday, nowWest), ErrInvalidDate)
}

func TestValidateRequest_LeadingZeroPhoneRejected(t *testing.T) {
	// "0532..." normalizes to 11 digits and never matches the pattern.
	req := validRequest()
	req.Phone = "0532 123 45 67"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
