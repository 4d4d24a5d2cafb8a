package get_horizon_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
	"github.com/m04kA/Lemo-AvailabilityService/internal/cache"
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/ptr"
)

const cacheName = "availability_horizon"

// maxConcurrentDayFetches ограничение параллельных запросов к источнику
// при пересчёте горизонта по дням
const maxConcurrentDayFetches = 4

// UseCase use case агрегации доступности по диапазону дат.
//
// Стратегии по убыванию предпочтения:
//  1. bulk-эндпоинт backend: счётчики всего диапазона одним round trip
//     (только когда не запрошены slots/appointments - bulk их не содержит);
//  2. пересчёт по дням с отдельным запросом записей на каждую дату
//     (параллельно, не более maxConcurrentDayFetches одновременно);
//  3. каждый день, по которому источник недоступен, считается fail-open
//     без известных бронирований - ошибка никогда не доходит до клиента.
type UseCase struct {
	engine       *availability.Engine
	source       AppointmentSource
	bulk         BulkSummarySource
	preferBulk   bool
	defaultDays  int
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
	bulk BulkSummarySource,
	preferBulk bool,
	defaultDays int,
	resultCache ResultCache,
	cacheTTL time.Duration,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if defaultDays < domain.MinHorizonDays || defaultDays > domain.MaxHorizonDays {
		defaultDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		engine:       engine,
		source:       source,
		bulk:         bulk,
		preferBulk:   preferBulk,
		defaultDays:  defaultDays,
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

// Execute выполняет use case агрегации горизонта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Start.IsZero() {
		return nil, ErrInvalidInput
	}

	days := clampDays(req.Days, uc.defaultDays)
	resource := domain.NormalizeResource(req.Resource)
	now := uc.timeProvider.Now()

	// 1. Пробуем кеш
	key := cache.BuildKey(req.Start, days, resource, includesOf(req))
	if payload, ok := uc.cache.Get(ctx, key); ok {
		var cached Response
		if err := json.Unmarshal(payload, &cached); err == nil {
			uc.metrics.ObserveCacheLookup(cacheName, true)
			return &cached, nil
		}
		uc.logger.Warn("GetHorizon: corrupt cache payload for key %s, recomputing", key)
	}
	uc.metrics.ObserveCacheLookup(cacheName, false)

	// 2. Bulk-эндпоинт, когда он может дать полный ответ
	var response *Response
	if uc.preferBulk && uc.bulk != nil && !req.IncludeSlots && !req.IncludeAppointments {
		response = uc.resolveViaBulk(ctx, req.Start, days, resource, now)
	}

	// 3. Пересчёт по дням
	if response == nil {
		var err error
		response, err = uc.resolvePerDay(ctx, req, req.Start, days, resource, now)
		if err != nil {
			return nil, err
		}
	}

	// 4. Сохраняем в кеш даже для отменённого запроса: данные уже получены,
	// следующий клиент получит их бесплатно
	if payload, err := json.Marshal(response); err == nil {
		if err := uc.cache.Set(context.WithoutCancel(ctx), key, payload, uc.cacheTTL); err != nil {
			uc.logger.Warn("GetHorizon: cache set failed for key %s: %v", key, err)
		}
	}

	uc.logger.Info("GetHorizon: start=%s, days=%d, barber=%s, degraded=%t",
		req.Start, days, resource, response.Degraded)

	return response, nil
}

// resolveViaBulk агрегирует диапазон через bulk-эндпоинт backend.
// Возвращает nil при недоступности bulk - вызывающий перейдёт на
// пересчёт по дням
func (uc *UseCase) resolveViaBulk(
	ctx context.Context,
	start domain.CalendarDate,
	days int,
	resource string,
	now time.Time,
) *Response {
	end := start.AddDays(days - 1)

	summary, err := uc.bulk.MonthSummary(ctx, start, end, resource)
	if err != nil {
		uc.logger.Warn("GetHorizon: bulk summary failed for %s..%s, falling back to per-day: %v",
			start, end, err)
		return nil
	}

	today := domain.DateFromTime(now)
	counts := make(map[string]int, days)
	var firstDate domain.CalendarDate
	haveFirst := false

	for i := 0; i < days; i++ {
		date := start.AddDays(i)

		// Локальные инварианты важнее данных backend: прошедшие и
		// закрытые дни всегда нулевые
		count := summary[date.String()]
		if date.Before(today) || uc.engine.Params().Schedule.IsClosed(date) {
			count = 0
		}
		counts[date.String()] = count

		if !haveFirst && count > 0 && !date.Before(today) {
			firstDate = date
			haveFirst = true
		}
	}

	response := &Response{Counts: counts}
	if haveFirst {
		// Метки слотов первого доступного дня bulk не возвращает -
		// достаём их одним точечным запросом
		day, degraded := uc.resolveSingleDay(ctx, firstDate, resource, now)
		response.FirstAvailable = &FirstAvailable{
			Date:  firstDate.String(),
			Slots: day.Labels(),
		}
		response.Degraded = degraded
	}

	return response
}

// resolvePerDay агрегирует диапазон пересчётом по дням: по одному запросу
// записей на дату, параллельно с ограничением maxConcurrentDayFetches
func (uc *UseCase) resolvePerDay(
	ctx context.Context,
	req *Request,
	start domain.CalendarDate,
	days int,
	resource string,
	now time.Time,
) (*Response, error) {
	type dayResult struct {
		day      domain.DayAvailability
		records  []*domain.Appointment
		degraded bool
	}

	results := make([]dayResult, days)
	today := domain.DateFromTime(now)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentDayFetches)

	var mu sync.Mutex
	for i := 0; i < days; i++ {
		i := i
		date := start.AddDays(i)

		// Прошедшие и закрытые дни нулевые без обращения к источнику
		if date.Before(today) || uc.engine.Params().Schedule.IsClosed(date) {
			results[i] = dayResult{day: domain.DayAvailability{Date: date, FreeSlots: []domain.SlotCandidate{}}}
			continue
		}

		group.Go(func() error {
			records, err := uc.source.ListRange(groupCtx, date, date, resource)
			degraded := false
			if err != nil {
				uc.logger.Error("GetHorizon: appointment source failed for date=%s, degrading to empty: %v", date, err)
				uc.metrics.ObserveUpstreamDegraded(cacheName)
				records = nil
				degraded = true
			}

			busy := availability.BusyIntervalsFor(date, records)
			day := uc.engine.ResolveDay(date, busy, resource, now)

			mu.Lock()
			results[i] = dayResult{day: day, records: records, degraded: degraded}
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// Запрос отменён клиентом - агрегировать нечего
		return nil, err
	}

	response := &Response{Counts: make(map[string]int, days)}
	if req.IncludeSlots {
		response.Slots = make(map[string][]string, days)
	}

	for i := 0; i < days; i++ {
		result := results[i]
		date := start.AddDays(i)
		dateStr := date.String()

		response.Counts[dateStr] = result.day.Count()
		if req.IncludeSlots {
			response.Slots[dateStr] = result.day.Labels()
		}
		if result.degraded {
			response.Degraded = true
		}

		if response.FirstAvailable == nil && result.day.Count() > 0 && !date.Before(today) {
			response.FirstAvailable = &FirstAvailable{
				Date:  dateStr,
				Slots: result.day.Labels(),
			}
		}

		if req.IncludeAppointments {
			for _, record := range result.records {
				info := AppointmentInfo{
					Start:    fmt.Sprintf("%sT%s:00", record.Date, record.StartTime),
					Duration: record.DurationMinutes,
				}
				if record.Resource != "" {
					info.Barber = ptr.Ptr(record.Resource)
				}
				response.Appointments = append(response.Appointments, info)
			}
		}
	}

	return response, nil
}

// resolveSingleDay точечный расчёт одного дня (для firstAvailable в bulk-пути)
func (uc *UseCase) resolveSingleDay(
	ctx context.Context,
	date domain.CalendarDate,
	resource string,
	now time.Time,
) (domain.DayAvailability, bool) {
	records, err := uc.source.ListRange(ctx, date, date, resource)
	degraded := false
	if err != nil {
		uc.logger.Error("GetHorizon: appointment source failed for first available date=%s: %v", date, err)
		uc.metrics.ObserveUpstreamDegraded(cacheName)
		records = nil
		degraded = true
	}

	busy := availability.BusyIntervalsFor(date, records)
	return uc.engine.ResolveDay(date, busy, resource, now), degraded
}

// clampDays ограничивает длину диапазона допустимыми пределами
func clampDays(days, fallback int) int {
	if days == 0 {
		return fallback
	}
	if days < domain.MinHorizonDays {
		return domain.MinHorizonDays
	}
	if days > domain.MaxHorizonDays {
		return domain.MaxHorizonDays
	}
	return days
}

// includesOf возвращает нормализованный список include для ключа кеша
func includesOf(req *Request) []string {
	includes := make([]string, 0, 2)
	if req.IncludeSlots {
		includes = append(includes, "slots")
	}
	if req.IncludeAppointments {
		includes = append(includes, "appointments")
	}
	return includes
}
