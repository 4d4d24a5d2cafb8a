package list_appointments

import (
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// AppointmentItem модель записи в списке
type AppointmentItem struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customerName"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Barber          string  `json:"barber,omitempty"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
}

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	Barber       string            `json:"barber,omitempty"`
	Appointments []AppointmentItem `json:"appointments"`
}

// FromDomainList конвертирует доменные записи в HTTP response
func FromDomainList(from, to domain.CalendarDate, barber string, items []*domain.Appointment) *AppointmentListResponse {
	appointments := make([]AppointmentItem, len(items))
	for i, a := range items {
		appointments[i] = AppointmentItem{
			ID:              a.ID,
			CustomerName:    a.CustomerName,
			Phone:           a.PhoneNumber,
			Email:           a.Email,
			Date:            a.Date.String(),
			StartTime:       a.StartTime.String(),
			DurationMinutes: a.DurationMinutes,
			Barber:          a.Resource,
			Kind:            string(a.Kind),
			Status:          string(a.Status),
		}
	}

	return &AppointmentListResponse{
		From:         from.String(),
		To:           to.String(),
		Barber:       barber,
		Appointments: appointments,
	}
}
