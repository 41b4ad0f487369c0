package get_available_days

import (
	"context"
	"time"

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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
