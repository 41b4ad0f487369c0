package resolve_day

import (
	"context"

	resolveDay "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_day"
)

type ResolveDayUseCase interface {
	Execute(ctx context.Context, req *resolveDay.Request) (*resolveDay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
