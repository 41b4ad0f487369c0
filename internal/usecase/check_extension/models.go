package check_extension

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса проверки смены процедуры у существующего бронирования
type Request struct {
	EventID            string // ID события в календаре мастера
	CurrentStart       time.Time
	CurrentEnd         time.Time
	NewProcedureID     string
	NewDurationMinutes int // используется, если процедура не указана
	MasterID           string
}

// Response модель ответа
type Response struct {
	Date               string
	Master             domain.Master
	NewDurationMinutes int
	DayReason          availability.Reason // причина закрытия дня, если окно не открыто
	Result             availability.ExtensionResult
}
