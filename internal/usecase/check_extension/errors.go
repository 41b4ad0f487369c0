package check_extension

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrProcedureNotFound возвращается, когда новая процедура не найдена среди активных
	ErrProcedureNotFound = errors.New("procedure not found")

	// ErrUpstreamUnavailable возвращается, когда не удалось получить расписание или занятость календаря
	ErrUpstreamUnavailable = errors.New("usecase: upstream unavailable")
)
