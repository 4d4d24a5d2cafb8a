package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Lemo-AvailabilityService/internal/api/handlers"
	createAppointment "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат dateTime, ожидается YYYY-MM-DDTHH:MM"
	msgInvalidInput       = "некорректные данные записи"
	msgDateInPast         = "дата записи уже прошла"
	msgClosed             = "барбершоп закрыт в выбранную дату"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
//
// Единственный маршрут, где ошибки доходят до клиента: запись не должна
// молча "создаваться" при конфликте или недоступном хранилище
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: dateTime=%q, barber=%q, error=%v",
				req.DateTime, req.Barber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: dateTime=%q", req.DateTime)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrClosed):
			h.logger.Warn("POST /appointments - Closed on date: dateTime=%q", req.DateTime)
			handlers.RespondBadRequest(w, msgClosed)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: dateTime=%q, barber=%q",
				req.DateTime, req.Barber)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: dateTime=%q, barber=%q, error=%v",
				req.DateTime, req.Barber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, dateTime=%s, barber=%q",
		result.ID, req.DateTime, req.Barber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
