package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	appointmentsService "github.com/m04kA/Lemo-AvailabilityService/internal/service/appointments"
)

// UseCase use case создания записи к барберу.
//
// Единственный путь, где корректность важнее доступности: перед записью
// доступность дня пересчитывается заново, и при недоступности источника
// данных запрос ЗАВЕРШАЕТСЯ ошибкой, а не деградирует - молчаливо
// созданная поверх чужой брони запись хуже отказа.
//
// В standalone-режиме пересчёт и вставка выполняются в сериализуемой
// транзакции: выборка записей дня берёт FOR UPDATE, что исключает гонку
// двух одновременных записей на один слот. В backend-режиме передаётся
// NopTransactionManager, финальную проверку выполняет сам backend.
type UseCase struct {
	engine       *availability.Engine
	store        AppointmentStore
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine *availability.Engine,
	store AppointmentStore,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:       engine,
		store:        store,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: name=%s, date=%s, time=%s, barber=%s",
		req.CustomerName, req.Date, req.StartTime, req.Resource)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	resource := domain.NormalizeResource(req.Resource)

	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.engine.Params().DurationMinutes
	}

	startMinute, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.StartTime)
	}

	// 2. Быстрые проверки до транзакции
	if req.Date.Before(domain.DateFromTime(now)) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date)
		return nil, ErrDateInPast
	}
	if _, open := uc.engine.Params().Schedule.WindowFor(req.Date); !open {
		uc.logger.Warn("CreateAppointment: closed on %s", req.Date)
		return nil, ErrClosed
	}

	var result *Response

	// 3. Пересчёт доступности и вставка атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		records, err := uc.store.ListRange(txCtx, req.Date, req.Date, resource)
		if err != nil {
			return fmt.Errorf("%w: failed to fetch appointments for conflict check: %v", ErrInternal, err)
		}

		busy := availability.BusyIntervalsFor(req.Date, records)
		day := uc.engine.ResolveDay(req.Date, busy, resource, now)

		if !slotOffered(day, req.StartTime.String()) {
			return ErrSlotNotAvailable
		}

		// Список свободных слотов подтверждает занятость только для
		// длительности по умолчанию; услуга длиннее обязана помещаться
		// целиком - включая хвост за пределами стандартного слота
		if duration != uc.engine.Params().DurationMinutes &&
			!uc.engine.SlotBookable(req.Date, startMinute, duration, busy, resource) {
			end, _ := req.StartTime.AddMinutes(duration)
			uc.logger.Warn("CreateAppointment: interval %s-%s on %s does not fit for %s",
				req.StartTime, end, req.Date, resource)
			return ErrSlotNotAvailable
		}

		id, err := uc.store.Create(txCtx, &domain.Appointment{
			CustomerName:    req.CustomerName,
			PhoneNumber:     req.PhoneNumber,
			Email:           req.Email,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Resource:        resource,
			Kind:            domain.KindAppointment,
			Status:          domain.StatusConfirmed,
		})
		if err != nil {
			return err
		}

		result = &Response{ID: id}
		return nil
	})

	if err != nil {
		uc.logger.Warn("CreateAppointment: failed for date=%s, time=%s, barber=%s: %v",
			req.Date, req.StartTime, resource, err)
		// Конфликт на стороне хранилища/backend равносилен занятому слоту
		if errors.Is(err, appointmentsService.ErrSlotConflict) {
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created id=%s, date=%s, time=%s, barber=%s",
		result.ID, req.Date, req.StartTime, resource)

	return result, nil
}

// slotOffered проверяет, что запрошенное время входит в список свободных
// слотов дня (а значит не занято, не пересекается с перерывом, попадает
// в сетку и не нарушает отсечку по текущему времени)
func slotOffered(day domain.DayAvailability, label string) bool {
	for _, slot := range day.FreeSlots {
		if slot.Label == label {
			return true
		}
	}
	return false
}
