package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// SalonPolicy holds the salon-wide parameters of availability computation
type SalonPolicy struct {
	Location                *time.Location
	StepMinutes             int
	MinBookingNoticeMinutes int
	MaxRangeDays            int

	// Local range for which busy intervals are requested
	BusyWindowStart types.TimeString
	BusyWindowEnd   types.TimeString
}

// BusyRange returns the instants between which busy intervals are requested for a day
func (p SalonPolicy) BusyRange(day time.Time) (time.Time, time.Time) {
	return p.BusyWindowStart.On(day, p.Location), p.BusyWindowEnd.On(day, p.Location)
}

// EarliestStart returns the first instant a new booking may start at
func (p SalonPolicy) EarliestStart(now time.Time) time.Time {
	return now.Add(time.Duration(p.MinBookingNoticeMinutes) * time.Minute)
}

// Today returns local midnight of the current salon date
func (p SalonPolicy) Today(now time.Time) time.Time {
	local := now.In(p.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.Location)
}
