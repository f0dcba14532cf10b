package domain

// Time format constants
const (
	// CallbackTimeFormat layout for requested callback instants: 2024-04-02T12:00
	CallbackTimeFormat = "2006-01-02T15:04"

	// CallbackTimeFormatName human-readable name of the expected format,
	// used in error messages shown to operators
	CallbackTimeFormatName = "YYYY-MM-DDTHH:mm"

	// DayAbbrFormat layout for abbreviated weekday names (Mon, Tue, ...)
	DayAbbrFormat = "Mon"
)

// Default callback window values
const (
	// DefaultMinLeadHours minimum hours that must elapse before a callback
	DefaultMinLeadHours = 2.0

	// DefaultMaxLeadHours maximum hours a callback can be scheduled ahead (6 days)
	DefaultMaxLeadHours = 144.0
)

// Business validation constants
const (
	MinLeadHoursLowerBound = 0.0
	MaxLeadHoursUpperBound = 8760.0 // 1 year

	SecondsPerHour = 3600.0
	SecondsPerDay  = 86400.0
	HoursPerDay    = 24.0
)
