package googlesheets

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	upstreamName = "google_sheets"
	operationGet = "values.get"
)

// Ranges A1-диапазоны листов таблицы мастера
type Ranges struct {
	Weekly     string
	Exceptions string
	Procedures string
}

// Client источник расписания поверх Google Sheets API v4
// Каждый мастер хранит расписание в своей таблице (domain.Master.SheetID)
type Client struct {
	service *sheets.Service
	ranges  Ranges
	limiter *rate.Limiter
	metrics Metrics
	log     Logger
	timeout time.Duration
}

// NewClient создает клиент Sheets API; limiter может быть nil
func NewClient(
	ctx context.Context,
	ranges Ranges,
	limiter *rate.Limiter,
	metrics Metrics,
	log Logger,
	opts ...option.ClientOption,
) (*Client, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}, opts...)

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheets service: %v", ErrInternal, err)
	}

	return &Client{
		service: service,
		ranges:  ranges,
		limiter: limiter,
		metrics: metrics,
		log:     log,
	}, nil
}

// SetTimeout ограничивает длительность одного запроса к API (0 - без ограничения)
func (c *Client) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// GetWeeklySchedule читает недельное расписание мастера
func (c *Client) GetWeeklySchedule(ctx context.Context, master domain.Master) (domain.WeeklySchedule, error) {
	rows, err := c.readRange(ctx, master, c.ranges.Weekly)
	if err != nil {
		return nil, err
	}
	return parseWeekly(rows, c.log)
}

// GetExceptions читает исключения расписания мастера
func (c *Client) GetExceptions(ctx context.Context, master domain.Master) (domain.Exceptions, error) {
	rows, err := c.readRange(ctx, master, c.ranges.Exceptions)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return domain.Exceptions{}, nil
	}
	return parseExceptions(rows, c.log)
}

// GetProcedures читает каталог процедур мастера
func (c *Client) GetProcedures(ctx context.Context, master domain.Master) ([]domain.Procedure, error) {
	rows, err := c.readRange(ctx, master, c.ranges.Procedures)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Procedure{}, nil
	}
	return parseProcedures(rows, c.log)
}

func (c *Client) readRange(ctx context.Context, master domain.Master, a1Range string) ([][]string, error) {
	if master.SheetID == "" {
		return nil, fmt.Errorf("%w: master=%s", ErrMissingSheet, master.ID)
	}

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
	resp, err := c.service.Spreadsheets.Values.Get(master.SheetID, a1Range).Context(ctx).Do()
	c.metrics.ObserveUpstream(upstreamName, operationGet, time.Since(started).Seconds(), err)

	if err != nil {
		c.log.Error("GoogleSheets: values.get failed: master=%s, range=%s, error=%v", master.ID, a1Range, err)
		return nil, fmt.Errorf("%w: values.get %s: %v", ErrRequestFailed, a1Range, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			if cell != nil {
				row[j] = fmt.Sprint(cell)
			}
		}
		rows[i] = row
	}

	return rows, nil
}
