package list_masters

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

type MasterRegistry interface {
	List() []domain.Master
}

type Logger interface {
	Info(format string, v ...interface{})
}
