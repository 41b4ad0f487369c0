package get_procedures

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getProcedures "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_procedures"
)

type Handler struct {
	useCase GetProceduresUseCase
	logger  Logger
}

func NewHandler(useCase GetProceduresUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/procedures
// Query params: masterId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID := r.URL.Query().Get("masterId")

	result, err := h.useCase.Execute(r.Context(), &getProcedures.Request{MasterID: masterID})
	if err != nil {
		switch {
		case errors.Is(err, getProcedures.ErrUpstreamUnavailable):
			h.logger.Error("GET /procedures - Upstream unavailable: master_id=%q, error=%v", masterID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /procedures - Failed to get procedures: master_id=%q, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /procedures - Procedures retrieved successfully: master_id=%s, count=%d",
		result.Master.ID, len(result.Procedures))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
