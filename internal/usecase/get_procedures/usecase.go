package get_procedures

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase use case получения каталога процедур мастера
type UseCase struct {
	procedures ProcedureSource
	masters    MasterRegistry
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(procedures ProcedureSource, masters MasterRegistry, logger Logger) *UseCase {
	return &UseCase{
		procedures: procedures,
		masters:    masters,
		logger:     logger,
	}
}

// Execute возвращает активные процедуры, отсортированные по order (без order - в конце)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	master := uc.masters.GetSafe(req.MasterID)

	all, err := uc.procedures.GetProcedures(ctx, master)
	if err != nil {
		uc.logger.Error("GetProcedures: failed to load procedures for master=%s: %v", master.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	active := domain.ActiveProcedures(all)
	uc.logger.Info("GetProcedures: master=%s, active=%d of %d", master.ID, len(active), len(all))

	return &Response{
		Master:     master,
		Procedures: active,
	}, nil
}
