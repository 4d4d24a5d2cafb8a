package bookingbackend

import (
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/types"
)

// AppointmentRecord запись о бронировании/перерыве из booking backend
type AppointmentRecord struct {
	ID                  string  `json:"id"`
	CustomerName        string  `json:"customerName"`
	PhoneNumber         string  `json:"phoneNumber"`
	Email               *string `json:"email,omitempty"`
	AppointmentDateTime string  `json:"appointmentDateTime"`
	Duration            int     `json:"duration"`
	Type                string  `json:"type"`              // "appointment" | "break", может отсутствовать
	AppointmentStatus   string  `json:"appointmentStatus"` // "confirmed" | ..., может отсутствовать
	Barber              string  `json:"barber"`
}

// listResponse backend возвращает либо массив, либо объект {appointments: []}
type listResponse struct {
	Appointments []AppointmentRecord `json:"appointments"`
}

// MonthSummaryResponse ответ bulk-эндпоинта: счётчики свободных слотов по датам
type MonthSummaryResponse map[string]int

// CreateAppointmentRequest запрос на создание бронирования в booking backend
type CreateAppointmentRequest struct {
	CustomerName        string  `json:"customerName"`
	PhoneNumber         string  `json:"phoneNumber"`
	AppointmentDateTime string  `json:"appointmentDateTime"`
	Duration            int     `json:"duration"`
	Type                string  `json:"type"`
	Barber              string  `json:"barber"`
	Email               *string `json:"email,omitempty"`
}

// CreateAppointmentResponse ответ backend на создание бронирования
type CreateAppointmentResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки от booking backend
type ErrorResponse struct {
	Error string `json:"error"`
}

// dateTimeLayouts форматы appointmentDateTime, встречающиеся у backend
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ToDomain конвертирует запись backend в доменную модель.
// Возвращает ok=false для записей без пригодного appointmentDateTime.
// Отсутствующие type/appointmentStatus трактуются как
// appointment/confirmed - так делает и сам backend.
func (r AppointmentRecord) ToDomain() (*domain.Appointment, bool) {
	var parsed time.Time
	var err error
	for _, layout := range dateTimeLayouts {
		parsed, err = time.Parse(layout, r.AppointmentDateTime)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, false
	}

	kind := domain.KindAppointment
	if r.Type != "" {
		kind = domain.RecordKind(r.Type)
	}

	status := domain.StatusConfirmed
	if r.AppointmentStatus != "" {
		status = domain.AppointmentStatus(r.AppointmentStatus)
	}

	return &domain.Appointment{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		Date:            domain.DateFromTime(parsed),
		StartTime:       types.NewTimeString(parsed),
		DurationMinutes: r.Duration,
		Resource:        domain.NormalizeResource(r.Barber),
		Kind:            kind,
		Status:          status,
	}, true
}
