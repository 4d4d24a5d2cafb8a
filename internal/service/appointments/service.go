package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	storageErrors "github.com/m04kA/Lemo-AvailabilityService/internal/infra/storage/appointment"
	backendClient "github.com/m04kA/Lemo-AvailabilityService/internal/integrations/bookingbackend"
)

// Service единая точка доступа к записям о бронированиях.
// Работает в одном из двух режимов:
//   - backend-режим: записи живут во внешнем booking backend (backend != nil)
//   - standalone: сервис сам хранит записи в Postgres (repo != nil)
//
// Движок доступности и handlers зависят только от этого сервиса
// и не знают, какой режим выбран.
type Service struct {
	repo    Repository
	backend BackendClient
	log     Logger
}

// NewService создает сервис записей. Если передан backend-клиент,
// он используется в приоритете; иначе ожидается репозиторий
func NewService(repo Repository, backend BackendClient, log Logger) *Service {
	return &Service{
		repo:    repo,
		backend: backend,
		log:     log,
	}
}

// Standalone возвращает true, когда записи хранятся локально
func (s *Service) Standalone() bool {
	return s.backend == nil
}

// ListRange получает активные записи за диапазон дат включительно,
// опционально отфильтрованные по ресурсу (канонический id барбера)
func (s *Service) ListRange(ctx context.Context, from, to domain.CalendarDate, resource string) ([]*domain.Appointment, error) {
	resource = domain.NormalizeResource(resource)

	if s.backend != nil {
		records, err := s.backend.ListRangeWithGracefulDegradation(ctx, from, to, resource)
		if err != nil {
			return nil, fmt.Errorf("%w: backend list range: %v", ErrInternal, err)
		}
		return activeOnly(records), nil
	}

	records, err := s.repo.ListRange(ctx, domain.RangeFilter{
		From:     from,
		To:       to,
		Resource: resource,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: repository list range: %v", ErrInternal, err)
	}
	return activeOnly(records), nil
}

// GetByID получает одну запись по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if s.backend != nil {
		record, err := s.backend.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, backendClient.ErrAppointmentNotFound) {
				return nil, ErrAppointmentNotFound
			}
			return nil, fmt.Errorf("%w: backend get by id: %v", ErrInternal, err)
		}
		return record, nil
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storageErrors.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: repository get by id: %v", ErrInternal, err)
	}
	return record, nil
}

// MonthSummary получает у backend готовые счётчики свободных слотов по датам.
// В standalone-режиме bulk-эндпоинта нет - возвращается ErrBulkUnavailable,
// и горизонт считается локально
func (s *Service) MonthSummary(ctx context.Context, from, to domain.CalendarDate, resource string) (map[string]int, error) {
	if s.backend == nil {
		return nil, ErrBulkUnavailable
	}

	summary, err := s.backend.MonthSummary(ctx, from, to, domain.NormalizeResource(resource))
	if err != nil {
		s.log.Warn("MonthSummary: bulk endpoint failed for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: %v", ErrBulkUnavailable, err)
	}
	return summary, nil
}

// Create создает запись о бронировании.
// Ошибки создания НЕ глушатся: это единственный путь, где корректность
// важнее доступности
func (s *Service) Create(ctx context.Context, a *domain.Appointment) (string, error) {
	if err := validateAppointment(a); err != nil {
		return "", err
	}

	a.Resource = domain.NormalizeResource(a.Resource)

	if s.backend != nil {
		req := &backendClient.CreateAppointmentRequest{
			CustomerName:        a.CustomerName,
			PhoneNumber:         a.PhoneNumber,
			AppointmentDateTime: fmt.Sprintf("%sT%s:00", a.Date, a.StartTime),
			Duration:            a.DurationMinutes,
			Type:                string(domain.KindAppointment),
			Barber:              domain.ResourceLabel(a.Resource),
			Email:               a.Email,
		}

		id, err := s.backend.Create(ctx, req)
		if err != nil {
			if errors.Is(err, backendClient.ErrSlotConflict) {
				return "", ErrSlotConflict
			}
			return "", fmt.Errorf("%w: backend create: %v", ErrInternal, err)
		}
		return id, nil
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, storageErrors.ErrSlotConflict) {
			return "", ErrSlotConflict
		}
		return "", fmt.Errorf("%w: repository create: %v", ErrInternal, err)
	}
	return created.ID, nil
}

func validateAppointment(a *domain.Appointment) error {
	if a.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if a.PhoneNumber == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}
	if a.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if a.DurationMinutes < domain.MinDurationMinutes || a.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}

// activeOnly отбрасывает отменённые записи и записи no-show
func activeOnly(records []*domain.Appointment) []*domain.Appointment {
	active := make([]*domain.Appointment, 0, len(records))
	for _, record := range records {
		if record.IsActive() {
			active = append(active, record)
		}
	}
	return active
}
