package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Exclusion identifies the booking being edited so that its own reservation
// is not counted as a conflict against itself.
type Exclusion struct {
	BookingID string
	Start     time.Time // zero when unknown
	End       time.Time // zero when unknown
}

// Matches reports whether the busy interval is the excluded booking:
// same event id, or both ends within domain.SelfMatchTolerance of the booking's own times.
func (e Exclusion) Matches(b domain.BusyInterval) bool {
	if e.BookingID != "" && b.ID == e.BookingID {
		return true
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return false
	}
	return within(b.Start, e.Start, domain.SelfMatchTolerance) &&
		within(b.End, e.End, domain.SelfMatchTolerance)
}

// Filter returns busy intervals that still block candidates
func (e Exclusion) Filter(busy []domain.BusyInterval) []domain.BusyInterval {
	result := make([]domain.BusyInterval, 0, len(busy))
	for _, b := range busy {
		if e.Matches(b) {
			continue
		}
		result = append(result, b)
	}
	return result
}

func within(a, b time.Time, tolerance time.Duration) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

func hasConflict(busy []domain.BusyInterval, start, end time.Time) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
