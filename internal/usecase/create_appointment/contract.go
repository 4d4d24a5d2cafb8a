package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// AppointmentStore интерфейс хранилища записей (сервис записей)
type AppointmentStore interface {
	// ListRange получает активные записи за диапазон дат включительно
	ListRange(ctx context.Context, from, to domain.CalendarDate, resource string) ([]*domain.Appointment, error)
	// Create создает запись и возвращает её идентификатор
	Create(ctx context.Context, a *domain.Appointment) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
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

// NopTransactionManager транзакционный менеджер-заглушка для backend-режима:
// проверка занятости и вставка выполняются внешним backend, локальной
// транзакции нет
type NopTransactionManager struct{}

// DoSerializable выполняет fn без транзакции
func (NopTransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
