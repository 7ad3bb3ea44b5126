package domain

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// Booking represents a committed reservation occupying exactly one slot.
// At most one booking may exist per (BookingDate, StartTime) pair; the
// storage layer enforces this with a unique index.
type Booking struct {
	ID           int64
	BookingDate  time.Time
	StartTime    types.TimeString
	CustomerName string
	Phone        string // digits only, 10 characters, leading 5
	ServiceIDs   []int64
	TotalPrice   float64
	Note         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateString returns the booking date in the local YYYY-MM-DD form used
// for slot comparison. The calendar date is compared as a string on
// purpose: converting through UTC could shift it by a day.
func (b *Booking) DateString() string {
	return b.BookingDate.Format(DateFormat)
}

// BookedTime is the PII-free projection of a booking used for public
// availability computation.
type BookedTime struct {
	Date time.Time
	Time types.TimeString
}

// BookingsFilter describes optional constraints for listing bookings.
type BookingsFilter struct {
	StartDate *time.Time // period start (inclusive), nil = unbounded
	EndDate   *time.Time // period end (inclusive), nil = unbounded
}
