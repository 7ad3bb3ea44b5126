package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 120

	MaxCustomerNameLength = 50
	MaxNoteLength         = 500

	// PhonePattern matches Turkish mobile numbers: exactly 10 digits
	// with a fixed leading 5 (e.g. 5321234567).
	PhonePattern = `^5[0-9]{9}$`
)

// Booking policy constants
const (
	// BookingHorizonDays is how many calendar days ahead (today inclusive)
	// slots are ever offered.
	BookingHorizonDays = 7

	// MinLeadTimeMinutes is the minimum gap between now and a same-day
	// slot for it to remain bookable.
	MinLeadTimeMinutes = 60

	// RetentionDays controls the retention sweep: bookings dated strictly
	// before midnight of (today - RetentionDays) are purged.
	RetentionDays = 2
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
