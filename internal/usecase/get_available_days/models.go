package get_available_days

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса дней с рабочим окном в диапазоне
type Request struct {
	From            string // YYYY-MM-DD, включительно
	Until           string // YYYY-MM-DD, включительно
	DurationMinutes int    // 0 - берется из процедуры или минимальная по каталогу
	ProcedureID     string
	Category        *string
	MasterID        string
}

// Response модель ответа
type Response struct {
	From            string
	Until           string
	Master          domain.Master
	DurationMinutes int
	Days            []availability.DayAvailability
}
