package get_available_days

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// Response lists the booking horizon day by day. FirstAvailable is the
// earliest day with at least one selectable slot, nil when every day in
// the horizon is closed or fully booked.
type Response struct {
	Days           []domain.DayAvailability
	FirstAvailable *time.Time
}
