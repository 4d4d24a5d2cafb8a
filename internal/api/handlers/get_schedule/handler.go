package get_schedule

import (
	"net/http"

	"github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	engine      AvailabilityEngine
	horizonDays int
	logger      Logger
}

func NewHandler(engine AvailabilityEngine, horizonDays int, logger Logger) *Handler {
	return &Handler{
		engine:      engine,
		horizonDays: horizonDays,
		logger:      logger,
	}
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromParams(h.engine.Params(), h.horizonDays)

	h.logger.Info("GET /schedule - Schedule retrieved")
	handlers.RespondJSON(w, http.StatusOK, response)
}
