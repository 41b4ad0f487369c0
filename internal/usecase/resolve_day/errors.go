package resolve_day

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrProcedureNotFound возвращается, когда процедура не найдена среди активных
	ErrProcedureNotFound = errors.New("procedure not found")

	// ErrUpstreamUnavailable возвращается, когда не удалось получить расписание
	ErrUpstreamUnavailable = errors.New("usecase: upstream unavailable")
)
