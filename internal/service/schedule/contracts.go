package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Source источник расписания мастера (Google Sheets или PostgreSQL)
type Source interface {
	GetWeeklySchedule(ctx context.Context, master domain.Master) (domain.WeeklySchedule, error)
	GetExceptions(ctx context.Context, master domain.Master) (domain.Exceptions, error)
	GetProcedures(ctx context.Context, master domain.Master) ([]domain.Procedure, error)
}

// Cache порт read-through кэша
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Metrics счётчики попаданий в кэш
type Metrics interface {
	CacheHit(kind string)
	CacheMiss(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
