package get_procedures

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Request модель запроса каталога процедур
type Request struct {
	MasterID string // пустой - мастер по умолчанию
}

// Response активные процедуры в порядке отображения
type Response struct {
	Master     domain.Master
	Procedures []domain.Procedure
}
