package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers"
	getAvailability "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/get_availability"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (YYYY-MM-DD), barber (опционально)
//
// Эндпоинт чтения никогда не отвечает ошибкой клиенту: запрос без даты
// или с некорректной датой получает пустой список слотов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	barber := r.URL.Query().Get("barber")

	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse(dateStr))
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, barber)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: date=%q, error=%v", dateStr, err)
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse(dateStr))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getAvailability.ErrInvalidInput) {
			h.logger.Warn("GET /availability - Invalid input: date=%q, barber=%q", dateStr, barber)
		} else {
			h.logger.Error("GET /availability - Failed to resolve availability: date=%q, barber=%q, error=%v",
				dateStr, barber, err)
		}
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse(dateStr))
		return
	}

	h.logger.Info("GET /availability - Availability resolved: date=%s, barber=%q, slots_count=%d, degraded=%t",
		result.DateStr, result.Resource, len(result.Slots), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
