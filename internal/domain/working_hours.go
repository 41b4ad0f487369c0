package domain

import (
	"strings"
	"time"
)

// WorkingHours is a recurring weekday rule or a date-specific exception.
// Hours is the raw, human-entered "HH:MM-HH:MM" string. Category, when set,
// restricts an exception to bookings of that service category.
type WorkingHours struct {
	Hours    string
	IsDayOff bool
	Category string
}

// WeeklySchedule maps lowercase English weekday names to working hours.
type WeeklySchedule map[string]WorkingHours

// Exceptions maps YYYY-MM-DD dates to overriding working hours.
type Exceptions map[string]WorkingHours

// WeekdayKey returns the WeeklySchedule key for a weekday.
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// IsCategoryScoped returns true if the rule applies only to one service category
func (w WorkingHours) IsCategoryScoped() bool {
	c := strings.ToLower(strings.TrimSpace(w.Category))
	return c != "" && c != "all"
}

// AllowsCategory reports whether a request for the given category may use this rule.
// A nil category means the caller did not ask for a specific service.
func (w WorkingHours) AllowsCategory(category *string) bool {
	if !w.IsCategoryScoped() || category == nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(*category), strings.TrimSpace(w.Category))
}
