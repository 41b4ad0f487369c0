package domain

import "time"

// Slot is a free interval of exactly the requested duration inside the working window
type Slot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
