package masters

import "errors"

var (
	// ErrNoMasters возвращается, если реестр создаётся без мастеров
	ErrNoMasters = errors.New("masters: no masters configured")

	// ErrDuplicateMaster возвращается при повторяющемся ID мастера
	ErrDuplicateMaster = errors.New("masters: duplicate master id")
)
