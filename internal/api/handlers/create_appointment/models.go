package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	createAppointment "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/create_appointment"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/types"
)

// CreateAppointmentRequest HTTP request model.
// DateTime - локальное время начала, YYYY-MM-DDTHH:MM (секунды допустимы и отбрасываются)
type CreateAppointmentRequest struct {
	CustomerName    string  `json:"customerName"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	DateTime        string  `json:"dateTime"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Barber          string  `json:"barber,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	ID string `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с разбором локальной метки времени на дату и время начала
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	datePart, timePart, ok := strings.Cut(r.DateTime, "T")
	if !ok {
		return nil, fmt.Errorf("invalid dateTime format %q, expected YYYY-MM-DDTHH:MM", r.DateTime)
	}

	date, err := domain.ParseDate(datePart)
	if err != nil {
		return nil, fmt.Errorf("invalid date in dateTime %q: %w", r.DateTime, err)
	}

	if len(timePart) > 5 {
		timePart = timePart[:5]
	}
	startTime, err := types.NewTimeStringFromString(timePart)
	if err != nil {
		return nil, fmt.Errorf("invalid time in dateTime %q: %w", r.DateTime, err)
	}

	return &createAppointment.Request{
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.Phone,
		Email:           r.Email,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Resource:        r.Barber,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{ID: resp.ID}
}
