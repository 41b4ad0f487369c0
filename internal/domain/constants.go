package domain

import "time"

// Default configuration values
const (
	DefaultTimezone                = "Europe/Warsaw"
	DefaultStepMinutes             = 15
	DefaultDurationMinutes         = 30 // when the procedure catalog is empty
	DefaultMinBookingNoticeMinutes = 0
	DefaultMaxRangeDays            = 180
	DefaultBusyWindowStart         = "05:00"
	DefaultBusyWindowEnd           = "22:00"
)

// Business validation constants
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 720 // 12 hours
	MinStepMinutes     = 5
	MaxStepMinutes     = 240
)

// SelfMatchTolerance is the maximum start/end drift at which a busy interval
// is considered to be the booking being edited.
const SelfMatchTolerance = time.Second

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday keys used by WeeklySchedule
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)
