package get_procedures

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ProcedureSource интерфейс каталога процедур мастера
type ProcedureSource interface {
	GetProcedures(ctx context.Context, master domain.Master) ([]domain.Procedure, error)
}

// MasterRegistry интерфейс реестра мастеров
type MasterRegistry interface {
	GetSafe(id string) domain.Master
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
