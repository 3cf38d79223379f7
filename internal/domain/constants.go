package domain

// Default configuration values
const (
	DefaultDurationMinutes = 60
	DefaultFindNextDays    = 30
	DefaultScanDaysCap     = 366
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours

	MaxNotesLength  = 500
	MaxReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
