package get_availability

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
	"github.com/m04kA/Lemo-AvailabilityService/internal/cache"
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

const cacheName = "availability_day"

// UseCase use case получения свободных слотов на один день.
// Путь чтения никогда не возвращает ошибку из-за недоступности источника
// записей: при сбое доступность считается без известных бронирований
// (fail-open), а факт деградации отражается в ответе и метриках.
type UseCase struct {
	engine       *availability.Engine
	source       AppointmentSource
	cache        ResultCache
	cacheTTL     time.Duration
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine *availability.Engine,
	source AppointmentSource,
	resultCache ResultCache,
	cacheTTL time.Duration,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		engine:       engine,
		source:       source,
		cache:        resultCache,
		cacheTTL:     cacheTTL,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	resource := domain.NormalizeResource(req.Resource)
	now := uc.timeProvider.Now()

	// 1. Пробуем кеш
	key := cache.BuildDayKey(req.Date, resource)
	if payload, ok := uc.cache.Get(ctx, key); ok {
		var cached Response
		if err := json.Unmarshal(payload, &cached); err == nil {
			uc.metrics.ObserveCacheLookup(cacheName, true)
			return &cached, nil
		}
		uc.logger.Warn("GetAvailability: corrupt cache payload for key %s, recomputing", key)
	}
	uc.metrics.ObserveCacheLookup(cacheName, false)

	// 2. Получаем записи на дату; при сбое - fail-open на пустой список
	degraded := false
	records, err := uc.source.ListRange(ctx, req.Date, req.Date, resource)
	if err != nil {
		uc.logger.Error("GetAvailability: appointment source failed for date=%s, barber=%s, degrading to empty: %v",
			req.Date, resource, err)
		uc.metrics.ObserveUpstreamDegraded(cacheName)
		records = nil
		degraded = true
	}

	// 3. Чистый расчёт: сетка -> пересечения -> отсечка
	busy := availability.BusyIntervalsFor(req.Date, records)
	day := uc.engine.ResolveDay(req.Date, busy, resource, now)

	response := &Response{
		Date:     req.Date,
		DateStr:  req.Date.String(),
		Resource: resource,
		Slots:    day.Labels(),
		Degraded: degraded,
	}

	// 4. Сохраняем в кеш даже для отменённого запроса; ошибка записи
	// не влияет на ответ
	if payload, err := json.Marshal(response); err == nil {
		if err := uc.cache.Set(context.WithoutCancel(ctx), key, payload, uc.cacheTTL); err != nil {
			uc.logger.Warn("GetAvailability: cache set failed for key %s: %v", key, err)
		}
	}

	uc.logger.Info("GetAvailability: date=%s, barber=%s, slots=%d, degraded=%t",
		req.Date, resource, len(response.Slots), degraded)

	return response, nil
}
