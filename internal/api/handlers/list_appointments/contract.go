package list_appointments

import (
	"context"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

type AppointmentsService interface {
	ListRange(ctx context.Context, from, to domain.CalendarDate, resource string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
