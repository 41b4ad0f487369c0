package get_available_days

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableDays "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_days"
)

const (
	msgMissingRange      = "Parametry from i until są wymagane."
	msgInvalidInput      = "Nieprawidłowe dane wejściowe."
	msgInvalidDuration   = "Nieprawidłowa długość procedury."
	msgRangeTooLong      = "Zbyt długi zakres dat."
	msgProcedureNotFound = "Nie znaleziono procedury."
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-days
// Query params: from, until (required, YYYY-MM-DD), procedureId, durationMinutes, category, masterId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, until := query.Get("from"), query.Get("until")
	if from == "" || until == "" {
		h.logger.Warn("GET /available-days - Missing range: from=%q, until=%q", from, until)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	duration, err := handlers.QueryInt(r, "durationMinutes")
	if err != nil {
		h.logger.Warn("GET /available-days - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	req := &getAvailableDays.Request{
		From:            from,
		Until:           until,
		DurationMinutes: duration,
		ProcedureID:     query.Get("procedureId"),
		Category:        handlers.OptionalQuery(r, "category"),
		MasterID:        query.Get("masterId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrRangeTooLong):
			h.logger.Warn("GET /available-days - Range too long: from=%s, until=%s", from, until)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /available-days - Invalid input: from=%q, until=%q, error=%v", from, until, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableDays.ErrProcedureNotFound):
			h.logger.Warn("GET /available-days - Procedure not found: procedure_id=%q", req.ProcedureID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, getAvailableDays.ErrUpstreamUnavailable):
			h.logger.Error("GET /available-days - Upstream unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /available-days - Failed to list days: from=%s, until=%s, error=%v", from, until, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-days - Days listed: from=%s, until=%s, master_id=%s, days=%d",
		from, until, result.Master.ID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
