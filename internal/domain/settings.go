package domain

import "time"

// DaySchedule is the opening schedule for a single weekday.
type DaySchedule struct {
	IsOpen  bool   `json:"isOpen"`
	Opening string `json:"opening,omitempty"` // "HH:MM", required when IsOpen
	Closing string `json:"closing,omitempty"` // "HH:MM", must be after Opening
}

// WeekSchedule maps each weekday to its schedule.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForDate returns the schedule for the weekday of the given date.
func (w WeekSchedule) ForDate(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Service is a bookable service of the shop. Bookings reference services
// by id; deleting a service does not invalidate past bookings.
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Icon        string  `json:"icon,omitempty"`
}

// Contact holds the shop's public contact details.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Settings is the business settings aggregate: identity, calendar
// configuration, the service catalog and the admin password hash.
// Immutable within a single slot computation; mutated only by admin
// settings updates.
type Settings struct {
	Name                string
	Description         string
	Contact             Contact
	LogoPath            *string
	SlotIntervalMinutes int
	WorkingHours        WeekSchedule
	Services            []Service
	AdminPasswordHash   string

	UpdatedAt time.Time
}

// ServiceByID looks up a service in the catalog.
func (s *Settings) ServiceByID(id int64) (Service, bool) {
	for _, svc := range s.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// Interval returns the configured slot interval, falling back to the
// default when the stored value is unset.
func (s *Settings) Interval() int {
	if s.SlotIntervalMinutes == 0 {
		return DefaultSlotIntervalMinutes
	}
	return s.SlotIntervalMinutes
}
