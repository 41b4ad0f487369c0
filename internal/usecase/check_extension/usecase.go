package check_extension

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case проверки, помещается ли новая процедура на место существующего бронирования
type UseCase struct {
	schedule ScheduleService
	calendar CalendarClient
	masters  MasterRegistry
	resolver *availability.Resolver
	policy   domain.SalonPolicy
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule ScheduleService,
	calendar CalendarClient,
	masters MasterRegistry,
	resolver *availability.Resolver,
	policy domain.SalonPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule: schedule,
		calendar: calendar,
		masters:  masters,
		resolver: resolver,
		policy:   policy,
		logger:   logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckExtension: validation failed: %v", err)
		return nil, err
	}

	master := uc.masters.GetSafe(req.MasterID)
	date := req.CurrentStart.In(uc.policy.Location).Format(domain.DateFormat)
	uc.logger.Info("CheckExtension: event=%s, master=%s, date=%s, procedure=%q",
		req.EventID, master.ID, date, req.NewProcedureID)

	// 2. Определяем новую длительность и категорию по процедуре
	duration := req.NewDurationMinutes
	var category *string
	if req.NewProcedureID != "" {
		procedures, err := uc.schedule.GetProcedures(ctx, master)
		if err != nil {
			uc.logger.Error("CheckExtension: failed to load procedures for master=%s: %v", master.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		procedure, ok := domain.FindProcedure(domain.ActiveProcedures(procedures), req.NewProcedureID)
		if !ok {
			uc.logger.Warn("CheckExtension: procedure id=%s not found", req.NewProcedureID)
			return nil, ErrProcedureNotFound
		}
		if duration == 0 {
			duration = availability.MinDuration(procedures, &procedure)
		}
		category = ptr.Ptr(procedure.Category)
	}

	extReq := availability.ExtensionRequest{
		BookingID:          req.EventID,
		CurrentStart:       req.CurrentStart,
		CurrentEnd:         req.CurrentEnd,
		NewDurationMinutes: duration,
		StepMinutes:        uc.policy.StepMinutes,
	}

	// 3. Процедура не длиннее текущей - помещается без запросов к календарю
	if time.Duration(duration)*time.Minute <= req.CurrentEnd.Sub(req.CurrentStart) {
		return &Response{
			Date:               date,
			Master:             master,
			NewDurationMinutes: duration,
			Result:             availability.CheckExtension(availability.Window{}, nil, extReq),
		}, nil
	}

	// 4. Параллельно получаем расписание и занятость на день бронирования
	day, err := uc.resolver.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	busyFrom, busyTo := uc.policy.BusyRange(day)

	var (
		weekly     domain.WeeklySchedule
		exceptions domain.Exceptions
		busy       []domain.BusyInterval
	)
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
	g.Go(func() error {
		var err error
		busy, err = uc.calendar.GetBusyIntervals(gctx, master.CalendarID, busyFrom, busyTo)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("CheckExtension: failed to load data for master=%s, date=%s: %v", master.ID, date, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 5. Рабочее окно дня с учетом категории новой процедуры
	window, err := uc.resolver.ResolveDay(date, weekly, exceptions, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if window.IsAnomaly() {
		uc.logger.Warn("CheckExtension: schedule anomaly on %s for master=%s: reason=%s, hours=%q",
			window.Date, master.ID, window.Reason, window.Hours)
	}

	if window.IsOpen && (window.Start.Before(busyFrom) || window.End.After(busyTo)) {
		from, to := busyFrom, busyTo
		if window.Start.Before(from) {
			from = window.Start
		}
		if window.End.After(to) {
			to = window.End
		}
		busy, err = uc.calendar.GetBusyIntervals(ctx, master.CalendarID, from, to)
		if err != nil {
			uc.logger.Error("CheckExtension: failed to load busy intervals for master=%s: %v", master.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
	}

	// 6. Проверяем продление
	result := availability.CheckExtension(window, busy, extReq)

	uc.logger.Info("CheckExtension: event=%s, status=%s, reason=%s, alternatives=%d",
		req.EventID, result.Status, result.Reason, len(result.Alternatives))

	return &Response{
		Date:               date,
		Master:             master,
		NewDurationMinutes: duration,
		DayReason:          window.Reason,
		Result:             result,
	}, nil
}
