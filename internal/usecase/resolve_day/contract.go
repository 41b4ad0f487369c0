package resolve_day

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleService интерфейс доступа к расписанию мастера
type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context, master domain.Master) (domain.WeeklySchedule, error)
	GetExceptions(ctx context.Context, master domain.Master) (domain.Exceptions, error)
	GetProcedures(ctx context.Context, master domain.Master) ([]domain.Procedure, error)
}

// MasterRegistry интерфейс реестра мастеров
type MasterRegistry interface {
	GetSafe(id string) domain.Master
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
