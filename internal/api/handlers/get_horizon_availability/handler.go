package get_horizon_availability

import (
	"net/http"

	"github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	useCase GetHorizonAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetHorizonAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/horizon
// Query params: start (YYYY-MM-DD), days, barber, include=slots,appointments
//
// Эндпоинт чтения никогда не отвечает ошибкой клиенту: запрос без start
// или с некорректной датой получает пустую map счетчиков
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startStr := query.Get("start")
	daysStr := query.Get("days")
	barber := query.Get("barber")
	include := query.Get("include")

	if startStr == "" {
		h.logger.Warn("GET /availability/horizon - Missing start date")
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse())
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, daysStr, barber, include)
	if err != nil {
		h.logger.Warn("GET /availability/horizon - Invalid start date: start=%q, error=%v", startStr, err)
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /availability/horizon - Failed to resolve horizon: start=%q, days=%q, barber=%q, error=%v",
			startStr, daysStr, barber, err)
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse())
		return
	}

	h.logger.Info("GET /availability/horizon - Horizon resolved: start=%s, days_count=%d, barber=%q, degraded=%t",
		startStr, len(result.Counts), barber, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
