package domain

import "time"

// Grid dimensions
const (
	HoursPerDay = 24
	MinCourts   = 1
	MaxCourts   = 64
)

// Defaults
const (
	DefaultCourts        = 6
	DefaultBookingAmount = 500 // placeholder, not a computed price
	DefaultTimezone      = "UTC"
)

// Validation limits
const (
	MaxCustomerNameLength = 200
	MaxContactInfoLength  = 200
)

// DateLayouts accepted on input, tried in order.
// Fractional seconds are accepted by the date-time layouts as well.
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// DateFormat is the calendar-day layout used in responses
const DateFormat = "2006-01-02"
