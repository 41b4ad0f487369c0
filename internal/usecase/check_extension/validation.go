package check_extension

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.EventID) == "" {
		return fmt.Errorf("%w: eventId is required", ErrInvalidInput)
	}

	if req.CurrentStart.IsZero() || req.CurrentEnd.IsZero() {
		return fmt.Errorf("%w: current start and end are required", ErrInvalidInput)
	}
	if !req.CurrentStart.Before(req.CurrentEnd) {
		return fmt.Errorf("%w: current start must be before current end", ErrInvalidInput)
	}

	if req.NewProcedureID == "" && req.NewDurationMinutes == 0 {
		return fmt.Errorf("%w: new procedure or duration is required", ErrInvalidInput)
	}
	if req.NewDurationMinutes != 0 &&
		(req.NewDurationMinutes < domain.MinDurationMinutes || req.NewDurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	return nil
}
