package get_available_days

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case получения дней, в которые процедура помещается в рабочее окно
type UseCase struct {
	schedule     ScheduleService
	masters      MasterRegistry
	resolver     *availability.Resolver
	policy       domain.SalonPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule ScheduleService,
	masters MasterRegistry,
	resolver *availability.Resolver,
	policy domain.SalonPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:     schedule,
		masters:      masters,
		resolver:     resolver,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}
	from, err := uc.resolver.ParseDate(req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	until, err := uc.resolver.ParseDate(req.Until)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateRange(from, until, uc.policy.MaxRangeDays); err != nil {
		uc.logger.Warn("GetAvailableDays: invalid range %s..%s: %v", req.From, req.Until, err)
		return nil, err
	}

	// 2. Определяем мастера
	master := uc.masters.GetSafe(req.MasterID)
	uc.logger.Info("GetAvailableDays: from=%s, until=%s, master=%s, procedure=%q",
		req.From, req.Until, master.ID, req.ProcedureID)

	// 3. Параллельно получаем расписание и процедуры
	var (
		weekly     domain.WeeklySchedule
		exceptions domain.Exceptions
		procedures []domain.Procedure
	)
	needProcedures := req.ProcedureID != "" || req.DurationMinutes == 0

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
		uc.logger.Error("GetAvailableDays: failed to load schedule for master=%s: %v", master.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 4. Определяем длительность и категорию
	duration := req.DurationMinutes
	category := req.Category
	if req.ProcedureID != "" {
		procedure, ok := domain.FindProcedure(domain.ActiveProcedures(procedures), req.ProcedureID)
		if !ok {
			uc.logger.Warn("GetAvailableDays: procedure id=%s not found", req.ProcedureID)
			return nil, ErrProcedureNotFound
		}
		if duration == 0 {
			duration = availability.MinDuration(procedures, &procedure)
		}
		if category == nil {
			category = ptr.Ptr(procedure.Category)
		}
	}
	if duration == 0 {
		duration = availability.MinDuration(procedures, nil)
	}

	// 5. Проходим по дням диапазона
	days, err := uc.resolver.ResolveRange(req.From, req.Until, duration, weekly, exceptions, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 6. Прошедшие дни недоступны для записи
	today := uc.policy.Today(uc.timeProvider.Now()).Format(domain.DateFormat)
	available := 0
	for i := range days {
		if days[i].Date < today {
			days[i].HasWindow = false
		}
		if days[i].Reason == availability.ReasonNoSchedule || days[i].Reason == availability.ReasonUnparseableHours {
			uc.logger.Warn("GetAvailableDays: schedule anomaly on %s for master=%s: reason=%s",
				days[i].Date, master.ID, days[i].Reason)
		}
		if days[i].HasWindow {
			available++
		}
	}

	uc.logger.Info("GetAvailableDays: %d of %d days available for master=%s, duration=%d",
		available, len(days), master.ID, duration)

	return &Response{
		From:            req.From,
		Until:           req.Until,
		Master:          master,
		DurationMinutes: duration,
		Days:            days,
	}, nil
}
