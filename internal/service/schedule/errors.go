package schedule

import "errors"

var (
	// ErrSourceUnavailable возвращается, когда источник расписания не ответил или вернул ошибку
	ErrSourceUnavailable = errors.New("schedule: source unavailable")
)
