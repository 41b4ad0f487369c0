package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
)

const (
	msgInvalidInput      = "Nieprawidłowe dane wejściowe."
	msgInvalidDuration   = "Nieprawidłowa długość procedury."
	msgInvalidStep       = "Nieprawidłowy krok siatki terminów."
	msgInvalidExclusion  = "Nieprawidłowy czas edytowanej wizyty."
	msgProcedureNotFound = "Nie znaleziono procedury."
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/slots
// Query params: procedureId, durationMinutes, stepMinutes, category, masterId,
// excludeBookingId, excludeStart, excludeEnd (RFC 3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	query := r.URL.Query()

	duration, err := handlers.QueryInt(r, "durationMinutes")
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	step, err := handlers.QueryInt(r, "stepMinutes")
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - Invalid step: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStep)
		return
	}

	excludeStart, err := handlers.QueryTime(r, "excludeStart")
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - Invalid excludeStart: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExclusion)
		return
	}
	excludeEnd, err := handlers.QueryTime(r, "excludeEnd")
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - Invalid excludeEnd: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExclusion)
		return
	}

	req := &getDaySlots.Request{
		Date:             date,
		DurationMinutes:  duration,
		ProcedureID:      query.Get("procedureId"),
		StepMinutes:      step,
		Category:         handlers.OptionalQuery(r, "category"),
		MasterID:         query.Get("masterId"),
		ExcludeBookingID: query.Get("excludeBookingId"),
		ExcludeStart:     excludeStart,
		ExcludeEnd:       excludeEnd,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /days/{date}/slots - Invalid input: date=%q, error=%v", date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getDaySlots.ErrProcedureNotFound):
			h.logger.Warn("GET /days/{date}/slots - Procedure not found: procedure_id=%q", req.ProcedureID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, getDaySlots.ErrUpstreamUnavailable):
			h.logger.Error("GET /days/{date}/slots - Upstream unavailable: date=%s, error=%v", date, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /days/{date}/slots - Failed to compute slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date}/slots - Slots computed: date=%s, master_id=%s, slots_count=%d",
		date, result.Master.ID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
