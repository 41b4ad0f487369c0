package resolve_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	resolveDay "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_day"
)

const (
	msgInvalidInput      = "Nieprawidłowe dane wejściowe."
	msgProcedureNotFound = "Nie znaleziono procedury."
)

type Handler struct {
	useCase ResolveDayUseCase
	logger  Logger
}

func NewHandler(useCase ResolveDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}
// Query params: category, procedureId, masterId (все опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	query := r.URL.Query()

	req := &resolveDay.Request{
		Date:        date,
		Category:    handlers.OptionalQuery(r, "category"),
		ProcedureID: query.Get("procedureId"),
		MasterID:    query.Get("masterId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolveDay.ErrInvalidInput):
			h.logger.Warn("GET /days/{date} - Invalid input: date=%q, error=%v", date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, resolveDay.ErrProcedureNotFound):
			h.logger.Warn("GET /days/{date} - Procedure not found: procedure_id=%q", req.ProcedureID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, resolveDay.ErrUpstreamUnavailable):
			h.logger.Error("GET /days/{date} - Upstream unavailable: date=%s, error=%v", date, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /days/{date} - Failed to resolve day: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date} - Day resolved: date=%s, master_id=%s, open=%t",
		date, result.Master.ID, result.Window.IsOpen)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
