package list_appointments

import (
	"net/http"

	"github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidFrom  = "некорректный формат from, ожидается YYYY-MM-DD"
	msgInvalidTo    = "некорректный формат to, ожидается YYYY-MM-DD"
	msgInvalidRange = "from не может быть позже to"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD), barber
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")
	barber := query.Get("barber")

	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /appointments - Missing range: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := domain.ParseDate(fromStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid from date: from=%q, error=%v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := domain.ParseDate(toStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid to date: to=%q, error=%v", toStr, err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	if from.After(to) {
		h.logger.Warn("GET /appointments - Invalid range: from=%s, to=%s", from, to)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	items, err := h.service.ListRange(r.Context(), from, to, barber)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: from=%s, to=%s, barber=%q, error=%v",
			from, to, barber, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments listed: from=%s, to=%s, barber=%q, count=%d",
		from, to, barber, len(items))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(from, to, barber, items))
}
