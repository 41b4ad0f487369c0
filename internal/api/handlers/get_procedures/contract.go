package get_procedures

import (
	"context"

	getProcedures "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_procedures"
)

type GetProceduresUseCase interface {
	Execute(ctx context.Context, req *getProcedures.Request) (*getProcedures.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
