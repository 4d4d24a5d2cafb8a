package get_horizon_availability

import (
	"context"
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// AppointmentSource интерфейс источника записей о бронированиях
type AppointmentSource interface {
	// ListRange получает активные записи за диапазон дат включительно
	ListRange(ctx context.Context, from, to domain.CalendarDate, resource string) ([]*domain.Appointment, error)
}

// BulkSummarySource интерфейс bulk-эндпоинта доступности.
// Возвращает готовые счётчики свободных слотов по датам за один round trip
type BulkSummarySource interface {
	MonthSummary(ctx context.Context, from, to domain.CalendarDate, resource string) (map[string]int, error)
}

// ResultCache интерфейс кеша результатов
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс метрик движка доступности
type Metrics interface {
	ObserveCacheLookup(cache string, hit bool)
	ObserveUpstreamDegraded(endpoint string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// nopMetrics заглушка, когда метрики выключены
type nopMetrics struct{}

func (nopMetrics) ObserveCacheLookup(string, bool) {}
func (nopMetrics) ObserveUpstreamDegraded(string)  {}
