package list_masters

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	registry MasterRegistry
	logger   Logger
}

func NewHandler(registry MasterRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle GET /api/v1/masters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masters := h.registry.List()

	h.logger.Info("GET /masters - Masters listed: count=%d", len(masters))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(masters))
}
