package get_day_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.StepMinutes != 0 &&
		(req.StepMinutes < domain.MinStepMinutes || req.StepMinutes > domain.MaxStepMinutes) {
		return fmt.Errorf("%w: step must be between %d and %d minutes",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}

	// Время исключаемого бронирования задается парой
	if (req.ExcludeStart == nil) != (req.ExcludeEnd == nil) {
		return fmt.Errorf("%w: excludeStart and excludeEnd must be set together", ErrInvalidInput)
	}
	if req.ExcludeStart != nil && !req.ExcludeStart.Before(*req.ExcludeEnd) {
		return fmt.Errorf("%w: excludeStart must be before excludeEnd", ErrInvalidInput)
	}

	return nil
}
