package get_day_slots

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const metricsOperation = "day_slots"

// UseCase use case получения свободных слотов мастера на дату
type UseCase struct {
	schedule     ScheduleService
	calendar     CalendarClient
	masters      MasterRegistry
	resolver     *availability.Resolver
	policy       domain.SalonPolicy
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule ScheduleService,
	calendar CalendarClient,
	masters MasterRegistry,
	resolver *availability.Resolver,
	policy domain.SalonPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:     schedule,
		calendar:     calendar,
		masters:      masters,
		resolver:     resolver,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}
	day, err := uc.resolver.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetDaySlots: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Определяем мастера
	master := uc.masters.GetSafe(req.MasterID)
	uc.logger.Info("GetDaySlots: date=%s, master=%s, procedure=%q, duration=%d",
		req.Date, master.ID, req.ProcedureID, req.DurationMinutes)

	// 3. Параллельно получаем расписание, процедуры и занятость календаря
	var (
		weekly     domain.WeeklySchedule
		exceptions domain.Exceptions
		procedures []domain.Procedure
		busy       []domain.BusyInterval
	)
	needProcedures := req.ProcedureID != "" || req.DurationMinutes == 0
	busyFrom, busyTo := uc.policy.BusyRange(day)

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
	g.Go(func() error {
		var err error
		busy, err = uc.calendar.GetBusyIntervals(gctx, master.CalendarID, busyFrom, busyTo)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetDaySlots: failed to load data for master=%s, date=%s: %v", master.ID, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 4. Определяем длительность и категорию
	duration := req.DurationMinutes
	category := req.Category
	if req.ProcedureID != "" {
		procedure, ok := domain.FindProcedure(domain.ActiveProcedures(procedures), req.ProcedureID)
		if !ok {
			uc.logger.Warn("GetDaySlots: procedure id=%s not found", req.ProcedureID)
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

	step := req.StepMinutes
	if step == 0 {
		step = uc.policy.StepMinutes
	}

	// 5. Вычисляем рабочее окно
	window, err := uc.resolver.ResolveDay(req.Date, weekly, exceptions, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if window.IsAnomaly() {
		uc.logger.Warn("GetDaySlots: schedule anomaly on %s for master=%s: reason=%s, hours=%q",
			window.Date, master.ID, window.Reason, window.Hours)
	}

	// 6. Окно шире стандартного диапазона занятости - догружаем занятость на всё окно
	if window.IsOpen && (window.Start.Before(busyFrom) || window.End.After(busyTo)) {
		busy, err = uc.calendar.GetBusyIntervals(ctx, master.CalendarID,
			earliest(window.Start, busyFrom), latest(window.End, busyTo))
		if err != nil {
			uc.logger.Error("GetDaySlots: failed to load busy intervals for master=%s: %v", master.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
	}

	// 7. Генерируем слоты и отбрасываем те, что начинаются раньше минимального времени записи
	exclude := availability.Exclusion{BookingID: req.ExcludeBookingID}
	if req.ExcludeStart != nil {
		exclude.Start = *req.ExcludeStart
		exclude.End = *req.ExcludeEnd
	}

	slots := availability.GenerateSlots(window, busy, duration, step, exclude)
	slots = availability.DropBefore(slots, uc.policy.EarliestStart(uc.timeProvider.Now()))

	uc.metrics.ObserveSlots(metricsOperation, len(slots))
	uc.logger.Info("GetDaySlots: generated %d slots for master=%s, date=%s, duration=%d, step=%d",
		len(slots), master.ID, req.Date, duration, step)

	return &Response{
		Date:            req.Date,
		Master:          master,
		DurationMinutes: duration,
		StepMinutes:     step,
		Window:          window,
		Slots:           slots,
	}, nil
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
