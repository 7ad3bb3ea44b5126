package get_available_slots

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// Request asks for the slots of a single date.
type Request struct {
	Date time.Time // calendar date, time-of-day ignored
}

// Response carries the slots of the requested date, each annotated with
// its availability. A closed day yields an empty slice.
type Response struct {
	Date            time.Time
	IntervalMinutes int
	Slots           []domain.Slot
}
