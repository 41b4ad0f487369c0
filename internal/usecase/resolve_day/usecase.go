package resolve_day

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case определения рабочего окна мастера на дату
type UseCase struct {
	schedule ScheduleService
	masters  MasterRegistry
	resolver *availability.Resolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule ScheduleService,
	masters MasterRegistry,
	resolver *availability.Resolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule: schedule,
		masters:  masters,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveDay: validation failed: %v", err)
		return nil, err
	}
	if _, err := uc.resolver.ParseDate(req.Date); err != nil {
		uc.logger.Warn("ResolveDay: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Определяем мастера
	master := uc.masters.GetSafe(req.MasterID)
	uc.logger.Info("ResolveDay: date=%s, master=%s", req.Date, master.ID)

	// 3. Параллельно получаем расписание, исключения и (при необходимости) процедуры
	var (
		weekly     domain.WeeklySchedule
		exceptions domain.Exceptions
		procedures []domain.Procedure
	)
	needProcedures := req.ProcedureID != "" && req.Category == nil

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		weekly, err = uc.schedule.GetWeeklySchedule(gctx, master)
		return err
	})
	g.Go(func() error {
		var err error
		exceptions, err = uc.schedule.GetExceptions(gctx, master)
		return err
	})
	if needProcedures {
		g.Go(func() error {
			var err error
			procedures, err = uc.schedule.GetProcedures(gctx, master)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Error("ResolveDay: failed to load schedule for master=%s: %v", master.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 4. Категория берется из процедуры, если не задана явно
	category := req.Category
	if needProcedures {
		procedure, ok := domain.FindProcedure(domain.ActiveProcedures(procedures), req.ProcedureID)
		if !ok {
			uc.logger.Warn("ResolveDay: procedure id=%s not found", req.ProcedureID)
			return nil, ErrProcedureNotFound
		}
		category = ptr.Ptr(procedure.Category)
	}

	// 5. Вычисляем окно
	window, err := uc.resolver.ResolveDay(req.Date, weekly, exceptions, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if window.IsAnomaly() {
		uc.logger.Warn("ResolveDay: schedule anomaly on %s for master=%s: reason=%s, hours=%q",
			window.Date, master.ID, window.Reason, window.Hours)
	}

	return &Response{
		Master: master,
		Window: window,
	}, nil
}
