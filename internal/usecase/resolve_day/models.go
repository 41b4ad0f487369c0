package resolve_day

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса рабочего окна на дату
type Request struct {
	Date        string  // YYYY-MM-DD в часовом поясе салона
	Category    *string // nil - без ограничения по категории
	ProcedureID string  // если задан и Category пустая, категория берется из процедуры
	MasterID    string  // пустой - мастер по умолчанию
}

// Response модель ответа
type Response struct {
	Master domain.Master
	Window availability.Window
}
