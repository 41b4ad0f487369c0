package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Виды закэшированных данных (часть ключа и метка метрики)
const (
	kindWeekly     = "weekly"
	kindExceptions = "exceptions"
	kindProcedures = "procedures"

	keyVersion = "v1"
)

// TTLs время жизни закэшированных данных
type TTLs struct {
	Weekly     time.Duration
	Exceptions time.Duration
	Procedures time.Duration
}

// Service read-through кэш поверх источника расписания
// Ошибки кэша логируются и не влияют на результат, ошибки источника возвращаются как ErrSourceUnavailable
type Service struct {
	source  Source
	cache   Cache
	ttl     TTLs
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	source Source,
	cache Cache,
	ttl TTLs,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		source:  source,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// GetWeeklySchedule возвращает недельное расписание мастера
func (s *Service) GetWeeklySchedule(ctx context.Context, master domain.Master) (domain.WeeklySchedule, error) {
	return readThrough(ctx, s, kindWeekly, master, s.ttl.Weekly, s.source.GetWeeklySchedule)
}

// GetExceptions возвращает исключения расписания мастера
func (s *Service) GetExceptions(ctx context.Context, master domain.Master) (domain.Exceptions, error) {
	return readThrough(ctx, s, kindExceptions, master, s.ttl.Exceptions, s.source.GetExceptions)
}

// GetProcedures возвращает каталог процедур мастера
func (s *Service) GetProcedures(ctx context.Context, master domain.Master) ([]domain.Procedure, error) {
	return readThrough(ctx, s, kindProcedures, master, s.ttl.Procedures, s.source.GetProcedures)
}

func cacheKey(kind string, master domain.Master) string {
	return fmt.Sprintf("%s:%s:%s", kind, keyVersion, master.ID)
}

func readThrough[T any](
	ctx context.Context,
	s *Service,
	kind string,
	master domain.Master,
	ttl time.Duration,
	load func(context.Context, domain.Master) (T, error),
) (T, error) {
	key := cacheKey(kind, master)

	// 1. Пробуем кэш
	if s.cache != nil {
		var cached T
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("Schedule: cache get failed: key=%s, error=%v", key, err)
		}
		if found && err == nil {
			s.metrics.CacheHit(kind)
			return cached, nil
		}
	}
	s.metrics.CacheMiss(kind)

	// 2. Загружаем из источника
	value, err := load(ctx, master)
	if err != nil {
		var zero T
		s.logger.Error("Schedule: failed to load %s for master=%s: %v", kind, master.ID, err)
		return zero, fmt.Errorf("%w: failed to load %s: %v", ErrSourceUnavailable, kind, err)
	}

	// 3. Сохраняем в кэш
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, value, ttl); err != nil {
			s.logger.Warn("Schedule: cache set failed: key=%s, error=%v", key, err)
		}
	}

	return value, nil
}
