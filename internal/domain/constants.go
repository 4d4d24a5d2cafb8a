package domain

// Default slot engine parameters
const (
	DefaultDurationMinutes = 40 // minutes per haircut
	DefaultStepMinutes     = 20 // grid step between candidate slot starts
	DefaultLeadMinutes     = 60 // no same-day bookings within the next hour
)

// Horizon limits
const (
	DefaultHorizonDays = 14
	MinHorizonDays     = 1
	MaxHorizonDays     = 90
)

// Business validation constants
const (
	MinDurationMinutes    = 5
	MaxDurationMinutes    = 240
	MaxCustomerNameLength = 200
	MaxPhoneNumberLength  = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
