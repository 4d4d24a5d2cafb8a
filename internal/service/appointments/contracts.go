package appointments

import (
	"context"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	"github.com/m04kA/Lemo-AvailabilityService/internal/integrations/bookingbackend"
)

// Repository интерфейс репозитория записей (standalone-режим)
type Repository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListRange(ctx context.Context, filter domain.RangeFilter) ([]*domain.Appointment, error)
}

// BackendClient интерфейс клиента внешнего booking backend.
// Чтение диапазона идёт через обёртку с graceful degradation: при
// недоступности backend сервис получает распознаваемую ошибку деградации
type BackendClient interface {
	ListRangeWithGracefulDegradation(ctx context.Context, from, to domain.CalendarDate, resource string) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	MonthSummary(ctx context.Context, from, to domain.CalendarDate, resource string) (bookingbackend.MonthSummaryResponse, error)
	Create(ctx context.Context, req *bookingbackend.CreateAppointmentRequest) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
