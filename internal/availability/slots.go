package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// GenerateSlots enumerates free slots of exactly durationMinutes inside the window.
// Candidates start at the opening instant and advance by stepMinutes; a candidate
// ending exactly at closing time is kept. Busy intervals use half-open semantics,
// so touching a reservation is not a conflict. Slots are returned in ascending order.
func GenerateSlots(window Window, busy []domain.BusyInterval, durationMinutes, stepMinutes int, exclude Exclusion) []domain.Slot {
	slots := make([]domain.Slot, 0)
	if !window.IsOpen || durationMinutes <= 0 || stepMinutes <= 0 {
		return slots
	}

	blocking := exclude.Filter(busy)
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	for start := window.Start; !start.Add(duration).After(window.End); start = start.Add(step) {
		end := start.Add(duration)
		if hasConflict(blocking, start, end) {
			continue
		}
		slots = append(slots, domain.Slot{Start: start, End: end})
	}

	return slots
}

// DropBefore removes slots starting before the given instant
func DropBefore(slots []domain.Slot, earliest time.Time) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Start.Before(earliest) {
			continue
		}
		result = append(result, s)
	}
	return result
}
