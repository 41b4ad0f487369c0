package domain

import "time"

// BusyInterval is an existing reservation or any blocked time on a staff calendar.
// ID is the calendar event id when the source provides one.
type BusyInterval struct {
	ID    string
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval is non-empty
func (b BusyInterval) IsValid() bool {
	return b.Start.Before(b.End)
}

// Overlaps reports whether [start, end) intersects the interval.
// Touching intervals do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}
