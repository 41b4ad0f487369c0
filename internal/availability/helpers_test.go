package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// tuesday 2024-06-11 in the salon zone
const testDate = "2024-06-11"

func warsaw(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	return loc
}

func at(t *testing.T, date string, hour, minute int) time.Time {
	t.Helper()
	day, err := time.ParseInLocation(domain.DateFormat, date, warsaw(t))
	require.NoError(t, err)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func standardWeek() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		domain.Monday:    {Hours: "10:00-17:00"},
		domain.Tuesday:   {Hours: "10:00-17:00"},
		domain.Wednesday: {Hours: "10:00-17:00"},
		domain.Thursday:  {Hours: "10:00-17:00"},
		domain.Friday:    {Hours: "10:00-17:00"},
		domain.Saturday:  {Hours: "10:00-14:00"},
		domain.Sunday:    {IsDayOff: true},
	}
}

func openWindow(t *testing.T, date string) Window {
	t.Helper()
	window, err := NewResolver(warsaw(t)).ResolveDay(date, standardWeek(), nil, nil)
	require.NoError(t, err)
	require.True(t, window.IsOpen)
	return window
}
