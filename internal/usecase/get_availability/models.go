package get_availability

import "github.com/m04kA/Lemo-AvailabilityService/internal/domain"

// Request модель запроса однодневной доступности
type Request struct {
	Date     domain.CalendarDate // Дата, на которую запрашиваются слоты
	Resource string              // Барбер (канонический id или родная метка), опционально
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date     domain.CalendarDate `json:"-"`
	DateStr  string              `json:"date"`
	Resource string              `json:"barber,omitempty"`
	Slots    []string            `json:"slots"` // Метки HH:MM по возрастанию
	// Degraded выставляется, когда источник записей был недоступен
	// и результат посчитан без известных бронирований
	Degraded bool `json:"degraded,omitempty"`
}
