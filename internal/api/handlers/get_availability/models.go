package get_availability

import (
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string   `json:"date"`
	Barber   string   `json:"barber,omitempty"`
	Slots    []string `json:"slots"`
	Degraded bool     `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	return &AvailabilityResponse{
		Date:     resp.DateStr,
		Barber:   resp.Resource,
		Slots:    slots,
		Degraded: resp.Degraded,
	}
}

// EmptyResponse строит пустой ответ для запросов без валидной даты
func EmptyResponse(dateStr string) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:  dateStr,
		Slots: []string{},
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, barber string) (*getAvailability.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Date:     date,
		Resource: barber,
	}, nil
}
