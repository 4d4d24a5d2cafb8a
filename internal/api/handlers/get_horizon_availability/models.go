package get_horizon_availability

import (
	"strconv"
	"strings"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	getHorizonAvailability "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/get_horizon_availability"
)

const (
	includeSlots        = "slots"
	includeAppointments = "appointments"
)

// HorizonResponse HTTP response model. Поля повторяют ответ use case,
// counts всегда присутствует (пустая map для запросов без валидного start)
type HorizonResponse struct {
	Counts         map[string]int                           `json:"counts"`
	Slots          map[string][]string                      `json:"slots,omitempty"`
	FirstAvailable *getHorizonAvailability.FirstAvailable   `json:"firstAvailable,omitempty"`
	Appointments   []getHorizonAvailability.AppointmentInfo `json:"appointments,omitempty"`
	Degraded       bool                                     `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getHorizonAvailability.Response) *HorizonResponse {
	counts := resp.Counts
	if counts == nil {
		counts = map[string]int{}
	}

	return &HorizonResponse{
		Counts:         counts,
		Slots:          resp.Slots,
		FirstAvailable: resp.FirstAvailable,
		Appointments:   resp.Appointments,
		Degraded:       resp.Degraded,
	}
}

// EmptyResponse строит пустой ответ для запросов без валидного start
func EmptyResponse() *HorizonResponse {
	return &HorizonResponse{Counts: map[string]int{}}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// days вне диапазона или нечисловой трактуется как 0 (дефолт use case)
func ToUseCaseRequest(startStr, daysStr, barber, include string) (*getHorizonAvailability.Request, error) {
	start, err := domain.ParseDate(startStr)
	if err != nil {
		return nil, err
	}

	days := 0
	if daysStr != "" {
		if parsed, parseErr := strconv.Atoi(daysStr); parseErr == nil {
			days = parsed
		}
	}

	req := &getHorizonAvailability.Request{
		Start:    start,
		Days:     days,
		Resource: barber,
	}

	for _, part := range strings.Split(include, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case includeSlots:
			req.IncludeSlots = true
		case includeAppointments:
			req.IncludeAppointments = true
		}
	}

	return req, nil
}
