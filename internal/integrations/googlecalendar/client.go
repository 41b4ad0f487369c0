package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	upstreamName   = "google_calendar"
	operationList  = "events.list"
	pageSize       = 250
	statusCanceled = "cancelled"
	transparent    = "transparent"
)

// Client клиент Google Calendar API v3, возвращающий занятые интервалы с ID событий
type Client struct {
	service *calendar.Service
	loc     *time.Location
	limiter *rate.Limiter
	metrics Metrics
	log     Logger
	timeout time.Duration
}

// NewClient создает клиент Calendar API
// loc - часовой пояс салона для событий на весь день; limiter может быть nil
func NewClient(
	ctx context.Context,
	loc *time.Location,
	limiter *rate.Limiter,
	metrics Metrics,
	log Logger,
	opts ...option.ClientOption,
) (*Client, error) {
	opts = append([]option.ClientOption{option.WithScopes(calendar.CalendarReadonlyScope)}, opts...)

	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return &Client{
		service: service,
		loc:     loc,
		limiter: limiter,
		metrics: metrics,
		log:     log,
	}, nil
}

// SetTimeout ограничивает длительность одного запроса к API (0 - без ограничения)
func (c *Client) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// GetBusyIntervals возвращает занятые интервалы календаря в диапазоне [from, to)
// Отменённые и "прозрачные" (не блокирующие время) события пропускаются
func (c *Client) GetBusyIntervals(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyInterval, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", ErrRequestFailed, err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	started := time.Now()
	busy := make([]domain.BusyInterval, 0)

	call := c.service.Events.List(calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(pageSize)

	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, event := range page.Items {
			interval, ok := c.toBusyInterval(event)
			if !ok {
				continue
			}
			busy = append(busy, interval)
		}
		return nil
	})

	c.metrics.ObserveUpstream(upstreamName, operationList, time.Since(started).Seconds(), err)

	if err != nil {
		c.log.Error("GoogleCalendar: events.list failed: calendar=%s, error=%v", calendarID, err)
		return nil, fmt.Errorf("%w: events.list: %v", ErrRequestFailed, err)
	}

	return busy, nil
}

func (c *Client) toBusyInterval(event *calendar.Event) (domain.BusyInterval, bool) {
	if event == nil || event.Status == statusCanceled || event.Transparency == transparent {
		return domain.BusyInterval{}, false
	}

	start, err := c.parseEventTime(event.Start)
	if err != nil {
		c.log.Warn("GoogleCalendar: skipping event id=%s: bad start: %v", event.Id, err)
		return domain.BusyInterval{}, false
	}
	end, err := c.parseEventTime(event.End)
	if err != nil {
		c.log.Warn("GoogleCalendar: skipping event id=%s: bad end: %v", event.Id, err)
		return domain.BusyInterval{}, false
	}

	interval := domain.BusyInterval{ID: event.Id, Start: start, End: end}
	if !interval.IsValid() {
		c.log.Warn("GoogleCalendar: skipping event id=%s: start %s is not before end %s",
			event.Id, start.Format(time.RFC3339), end.Format(time.RFC3339))
		return domain.BusyInterval{}, false
	}

	return interval, true
}

// parseEventTime читает dateTime, а для событий на весь день - date (полночь в часовом поясе салона)
func (c *Client) parseEventTime(t *calendar.EventDateTime) (time.Time, error) {
	if t == nil {
		return time.Time{}, errMissingTime
	}
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	if t.Date != "" {
		return time.ParseInLocation(domain.DateFormat, t.Date, c.loc)
	}
	return time.Time{}, errMissingTime
}
