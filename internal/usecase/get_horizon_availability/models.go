package get_horizon_availability

import "github.com/m04kA/Lemo-AvailabilityService/internal/domain"

// Request модель запроса горизонта доступности
type Request struct {
	Start    domain.CalendarDate // Первая дата диапазона
	Days     int                 // Длина диапазона; 0 = дефолт, ограничивается [1, 90]
	Resource string              // Барбер, опционально
	// IncludeSlots - вернуть метки свободных слотов по каждой дате
	IncludeSlots bool
	// IncludeAppointments - вернуть сырые записи диапазона (для отладки/админки)
	IncludeAppointments bool
}

// FirstAvailable первая дата диапазона со свободными слотами
type FirstAvailable struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// AppointmentInfo краткая информация о записи для include=appointments
type AppointmentInfo struct {
	Start    string  `json:"start"` // Локальное время начала, YYYY-MM-DDTHH:MM:SS
	Duration int     `json:"duration"`
	Barber   *string `json:"barber"` // null для записей без привязки к барберу
}

// Response модель ответа с агрегированной доступностью диапазона.
// Counts содержит ровно по одному ключу на каждую дату диапазона
type Response struct {
	Counts         map[string]int      `json:"counts"`
	Slots          map[string][]string `json:"slots,omitempty"`
	FirstAvailable *FirstAvailable     `json:"firstAvailable,omitempty"`
	Appointments   []AppointmentInfo   `json:"appointments,omitempty"`
	// Degraded выставляется, когда хотя бы один день посчитан
	// без доступных данных о записях
	Degraded bool `json:"degraded,omitempty"`
}
