package get_available_days

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.Until) == "" {
		return fmt.Errorf("%w: from and until are required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	return nil
}

// validateRange проверяет порядок дат и длину диапазона (в календарных днях, включительно)
func validateRange(from, until time.Time, maxDays int) error {
	if until.Before(from) {
		return fmt.Errorf("%w: until is before from", ErrInvalidInput)
	}

	days := 1
	for day := from; day.Before(until); day = day.AddDate(0, 0, 1) {
		days++
		if days > maxDays {
			return fmt.Errorf("%w: at most %d days", ErrRangeTooLong, maxDays)
		}
	}

	return nil
}
