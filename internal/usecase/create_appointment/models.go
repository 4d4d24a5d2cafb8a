package create_appointment

import (
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName    string
	PhoneNumber     string
	Email           *string
	Date            domain.CalendarDate
	StartTime       types.TimeString
	DurationMinutes int    // 0 = длительность по умолчанию
	Resource        string // Барбер; пустой = барбер по умолчанию деплоя
}

// Response модель ответа на создание записи
type Response struct {
	ID string `json:"id"`
}
