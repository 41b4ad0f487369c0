package get_procedures

import "errors"

var (
	// ErrUpstreamUnavailable возвращается, когда не удалось получить каталог процедур
	ErrUpstreamUnavailable = errors.New("usecase: upstream unavailable")
)
