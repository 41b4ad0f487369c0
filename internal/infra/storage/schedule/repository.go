package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository источник расписания в PostgreSQL
// Альтернатива Google Sheets для салонов, которые ведут расписание в админке
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklySchedule получает недельное расписание мастера
func (r *Repository) GetWeeklySchedule(ctx context.Context, master domain.Master) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select("weekday", "hours", "is_day_off").
		From("weekly_hours").
		Where(squirrel.Eq{"master_id": master.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	weekly := make(domain.WeeklySchedule, 7)
	for rows.Next() {
		var (
			weekday string
			hours   sql.NullString
			dayOff  bool
		)
		if err := rows.Scan(&weekday, &hours, &dayOff); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
		}
		weekly[weekday] = domain.WorkingHours{Hours: hours.String, IsDayOff: dayOff}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - iterate rows: %v", ErrExecQuery, err)
	}

	return weekly, nil
}

// GetExceptions получает исключения расписания мастера
func (r *Repository) GetExceptions(ctx context.Context, master domain.Master) (domain.Exceptions, error) {
	query, args, err := psqlbuilder.Select("date", "hours", "is_day_off", "category").
		From("schedule_exceptions").
		Where(squirrel.Eq{"master_id": master.ID}).
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make(domain.Exceptions)
	for rows.Next() {
		var (
			date     time.Time
			hours    sql.NullString
			dayOff   bool
			category sql.NullString
		)
		if err := rows.Scan(&date, &hours, &dayOff, &category); err != nil {
			return nil, fmt.Errorf("%w: GetExceptions - scan row: %v", ErrScanRow, err)
		}
		exceptions[date.Format(domain.DateFormat)] = domain.WorkingHours{
			Hours:    hours.String,
			IsDayOff: dayOff,
			Category: category.String,
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - iterate rows: %v", ErrExecQuery, err)
	}

	return exceptions, nil
}

// GetProcedures получает каталог процедур мастера (включая неактивные)
func (r *Repository) GetProcedures(ctx context.Context, master domain.Master) ([]domain.Procedure, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name_pl",
		"name_ru",
		"category",
		"duration_min",
		"price",
		"is_active",
		"sort_order",
	).
		From("procedures").
		Where(squirrel.Eq{"master_id": master.ID}).
		OrderBy("sort_order NULLS LAST", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProcedures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProcedures - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	procedures := make([]domain.Procedure, 0)
	for rows.Next() {
		var (
			p         domain.Procedure
			nameRU    sql.NullString
			category  sql.NullString
			price     sql.NullString
			sortOrder sql.NullInt64
		)
		if err := rows.Scan(
			&p.ID,
			&p.NamePL,
			&nameRU,
			&category,
			&p.DurationMinutes,
			&price,
			&p.IsActive,
			&sortOrder,
		); err != nil {
			return nil, fmt.Errorf("%w: GetProcedures - scan row: %v", ErrScanRow, err)
		}

		p.NameRU = nameRU.String
		p.Category = category.String
		p.Price = price.String
		if p.Price == "" {
			p.Price = "0"
		}
		if sortOrder.Valid {
			order := int(sortOrder.Int64)
			p.Order = &order
		}

		procedures = append(procedures, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetProcedures - iterate rows: %v", ErrExecQuery, err)
	}

	return procedures, nil
}
