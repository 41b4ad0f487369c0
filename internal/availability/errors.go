package availability

import "errors"

var (
	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("availability: invalid date, expected YYYY-MM-DD")

	// ErrInvalidRange возвращается, если конец диапазона раньше начала
	ErrInvalidRange = errors.New("availability: range end is before range start")
)
