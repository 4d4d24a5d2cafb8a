package get_appointment

import (
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
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

// FromDomain конвертирует доменную запись в HTTP response
func FromDomain(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
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
