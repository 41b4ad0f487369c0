package check_extension

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

// CalendarClient интерфейс клиента календаря мастера
type CalendarClient interface {
	GetBusyIntervals(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyInterval, error)
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
