package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// MinDuration returns the slot length to search for.
// With a requested procedure it is that procedure's duration; otherwise the shortest
// active procedure, so a generic calendar view shows the most permissive grid.
// The result is never below domain.MinDurationMinutes; an empty catalog yields
// domain.DefaultDurationMinutes.
func MinDuration(procedures []domain.Procedure, requested *domain.Procedure) int {
	if requested != nil {
		return max(domain.MinDurationMinutes, requested.DurationMinutes)
	}

	shortest := 0
	for _, p := range procedures {
		if !p.IsActive || p.DurationMinutes <= 0 {
			continue
		}
		if shortest == 0 || p.DurationMinutes < shortest {
			shortest = p.DurationMinutes
		}
	}

	if shortest == 0 {
		return domain.DefaultDurationMinutes
	}
	return max(domain.MinDurationMinutes, shortest)
}
