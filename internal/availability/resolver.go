package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Reason explains why a day is closed
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonDayOff           Reason = "day_off"
	ReasonNoSchedule       Reason = "no_schedule"
	ReasonUnparseableHours Reason = "unparseable_hours"
	ReasonCategoryMismatch Reason = "category_mismatch"
)

// Window is the effective working window of one local calendar date.
// Start and End are set only when IsOpen is true.
type Window struct {
	Date   string
	Hours  string // raw hours of the rule that was applied
	Open   types.TimeString
	Close  types.TimeString
	Start  time.Time
	End    time.Time
	IsOpen bool
	Reason Reason

	// FromException is true when a date exception overrode the weekly rule
	FromException bool
}

// IsAnomaly returns true if the day is closed because of malformed schedule data
func (w Window) IsAnomaly() bool {
	return w.Reason == ReasonNoSchedule || w.Reason == ReasonUnparseableHours
}

// Fits reports whether a service of the given length fits into the window at all.
// Lengths are compared in wall-clock minutes.
func (w Window) Fits(durationMinutes int) bool {
	return w.IsOpen && w.Close.Minutes()-w.Open.Minutes() >= durationMinutes
}

// DayAvailability is one entry of a range query
type DayAvailability struct {
	Date      string
	HasWindow bool
	Reason    Reason
}

// Resolver merges the weekly schedule with date exceptions in the salon time zone
type Resolver struct {
	loc *time.Location
}

// NewResolver creates a resolver for the given IANA zone
func NewResolver(loc *time.Location) *Resolver {
	return &Resolver{loc: loc}
}

// Location returns the salon time zone
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// ParseDate parses a YYYY-MM-DD date as local midnight in the salon zone
func (r *Resolver) ParseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateFormat, date, r.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, nil
}

// ResolveDay returns the effective window for one date.
// Malformed schedule data never produces an error: the day is reported closed with a Reason.
func (r *Resolver) ResolveDay(date string, weekly domain.WeeklySchedule, exceptions domain.Exceptions, category *string) (Window, error) {
	day, err := r.ParseDate(date)
	if err != nil {
		return Window{}, err
	}
	return r.resolve(day, weekly, exceptions, category), nil
}

// ResolveRange reports for every date in [from, until] whether a service of
// durationMinutes fits into that day's window.
func (r *Resolver) ResolveRange(from, until string, durationMinutes int, weekly domain.WeeklySchedule, exceptions domain.Exceptions, category *string) ([]DayAvailability, error) {
	start, err := r.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := r.ParseDate(until)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from, until)
	}

	days := make([]DayAvailability, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		window := r.resolve(day, weekly, exceptions, category)
		days = append(days, DayAvailability{
			Date:      window.Date,
			HasWindow: window.Fits(durationMinutes),
			Reason:    window.Reason,
		})
	}

	return days, nil
}

func (r *Resolver) resolve(day time.Time, weekly domain.WeeklySchedule, exceptions domain.Exceptions, category *string) Window {
	date := day.Format(domain.DateFormat)
	window := Window{Date: date}

	rule, found := weekly[domain.WeekdayKey(day.Weekday())]
	if exception, ok := exceptions[date]; ok {
		rule, found = exception, true
		window.FromException = true
	}
	window.Hours = rule.Hours

	if !found {
		window.Reason = ReasonNoSchedule
		return window
	}
	if rule.IsDayOff {
		window.Reason = ReasonDayOff
		return window
	}
	if window.FromException && !rule.AllowsCategory(category) {
		window.Reason = ReasonCategoryMismatch
		return window
	}

	opening, closing, ok := ParseHours(rule.Hours)
	if !ok {
		window.Reason = ReasonUnparseableHours
		return window
	}

	window.Open = opening
	window.Close = closing
	window.Start = opening.On(day, r.loc)
	window.End = closing.On(day, r.loc)
	window.IsOpen = true

	return window
}
