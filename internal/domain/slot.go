package domain

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// Slot is a candidate appointment time within an open business day.
// Slots are computed on demand and never stored.
type Slot struct {
	Time     types.TimeString
	Disabled bool // past/too-soon or already booked
}

// DayAvailability describes whether a date within the booking horizon
// has at least one selectable slot.
type DayAvailability struct {
	Date      time.Time
	Available bool
}
