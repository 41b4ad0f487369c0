package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса свободных слотов на дату
type Request struct {
	Date            string // YYYY-MM-DD
	DurationMinutes int    // 0 - берется из процедуры или минимальная по каталогу
	ProcedureID     string
	StepMinutes     int // 0 - шаг салона
	Category        *string
	MasterID        string

	// Редактируемое бронирование, которое не должно конфликтовать само с собой
	ExcludeBookingID string
	ExcludeStart     *time.Time
	ExcludeEnd       *time.Time
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            string
	Master          domain.Master
	DurationMinutes int
	StepMinutes     int
	Window          availability.Window
	Slots           []domain.Slot
}
