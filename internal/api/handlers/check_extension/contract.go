package check_extension

import (
	"context"

	checkExtension "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_extension"
)

type CheckExtensionUseCase interface {
	Execute(ctx context.Context, req *checkExtension.Request) (*checkExtension.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
