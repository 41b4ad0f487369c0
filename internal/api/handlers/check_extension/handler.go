package check_extension

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkExtension "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_extension"
)

const (
	msgInvalidInput      = "Nieprawidłowe dane wejściowe."
	msgProcedureNotFound = "Nie znaleziono procedury."
)

type Handler struct {
	useCase CheckExtensionUseCase
	logger  Logger
}

func NewHandler(useCase CheckExtensionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{eventId}/check-extension
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	// Декодируем body
	var body CheckExtensionRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings/{id}/check-extension - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	req, err := body.ToUseCaseRequest(eventID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/check-extension - Invalid booking time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkExtension.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/check-extension - Invalid input: event_id=%q, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkExtension.ErrProcedureNotFound):
			h.logger.Warn("POST /bookings/{id}/check-extension - Procedure not found: procedure_id=%q", body.NewProcedureID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, checkExtension.ErrUpstreamUnavailable):
			h.logger.Error("POST /bookings/{id}/check-extension - Upstream unavailable: event_id=%s, error=%v", eventID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /bookings/{id}/check-extension - Failed to check extension: event_id=%s, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/check-extension - Checked: event_id=%s, status=%s",
		eventID, result.Result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(body, result))
}
