package get_available_days

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooLong возвращается, когда диапазон дат превышает допустимый
	ErrRangeTooLong = errors.New("date range is too long")

	// ErrProcedureNotFound возвращается, когда процедура не найдена среди активных
	ErrProcedureNotFound = errors.New("procedure not found")

	// ErrUpstreamUnavailable возвращается, когда не удалось получить расписание
	ErrUpstreamUnavailable = errors.New("usecase: upstream unavailable")
)
