package availability

import (
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// Params явная конфигурация движка доступности.
// Все наблюдавшиеся варианты поведения (длительность, шаг сетки,
// время отсечки, политика перерывов) - параметры одного движка,
// а не отдельные копии логики.
type Params struct {
	Schedule        domain.WeeklySchedule
	DurationMinutes int
	StepMinutes     int
	LeadMinutes     int
	// FullDayBreak - консервативная политика для записей-перерывов из
	// источника: любая такая запись блокирует весь день. При false
	// блокируется только её собственный интервал.
	FullDayBreak bool
}

// Engine чистый движок доступности: превращает (расписание, занятые
// интервалы, текущее время) в список свободных слотов дня.
// Не выполняет I/O; все данные должны быть получены заранее.
type Engine struct {
	params Params
}

// NewEngine создает движок, заполняя нулевые параметры значениями по умолчанию
func NewEngine(params Params) *Engine {
	if params.DurationMinutes <= 0 {
		params.DurationMinutes = domain.DefaultDurationMinutes
	}
	if params.StepMinutes <= 0 {
		params.StepMinutes = domain.DefaultStepMinutes
	}
	if params.LeadMinutes < 0 {
		params.LeadMinutes = domain.DefaultLeadMinutes
	}
	return &Engine{params: params}
}

// Params возвращает действующую конфигурацию движка
func (e *Engine) Params() Params {
	return e.params
}

// ResolveDay вычисляет свободные слоты на дату.
// Гарантии результата:
//   - пустой список для дат строго раньше сегодняшней и для закрытых дней;
//   - ни один слот не пересекается с перерывом или занятым интервалом
//     своего ресурса;
//   - для сегодняшней даты ни один слот не начинается раньше now+lead;
//   - слоты упорядочены по возрастанию времени.
func (e *Engine) ResolveDay(
	date domain.CalendarDate,
	busy []domain.BusyInterval,
	resource string,
	now time.Time,
) domain.DayAvailability {
	empty := domain.DayAvailability{Date: date, FreeSlots: []domain.SlotCandidate{}}

	if date.Before(domain.DateFromTime(now)) {
		return empty
	}

	window, open := e.params.Schedule.WindowFor(date)
	if !open {
		return empty
	}

	if e.params.FullDayBreak && HasFullDayBlock(busy, resource) {
		return empty
	}

	candidates := GenerateGrid(window, e.params.Schedule.BreaksFor(date), e.params.DurationMinutes, e.params.StepMinutes)
	free := FilterFree(candidates, busy, e.params.DurationMinutes, resource)
	free = ApplyCutoff(free, date, now, e.params.LeadMinutes)

	return domain.DayAvailability{Date: date, FreeSlots: free}
}

// SlotBookable проверяет, что интервал [startMinute, startMinute+durationMinutes)
// целиком помещается в рабочие часы даты и не пересекается ни с перерывами,
// ни с занятыми интервалами ресурса.
//
// Сетка ResolveDay гарантирует это только для длительности по умолчанию:
// запись с большей длительностью обязана дополнительно пройти эту проверку,
// иначе её хвост может лечь поверх чужой брони или перерыва.
func (e *Engine) SlotBookable(
	date domain.CalendarDate,
	startMinute, durationMinutes int,
	busy []domain.BusyInterval,
	resource string,
) bool {
	if durationMinutes <= 0 {
		return false
	}

	window, open := e.params.Schedule.WindowFor(date)
	if !open {
		return false
	}
	if startMinute < window.OpenMinute || startMinute+durationMinutes > window.CloseMinute {
		return false
	}
	if overlapsAnyBreak(startMinute, durationMinutes, e.params.Schedule.BreaksFor(date)) {
		return false
	}
	return !overlapsAnyBusy(startMinute, durationMinutes, busy, resource)
}

// BusyIntervalsFor материализует записи источника в занятые интервалы
// одной даты. Неактивные записи и записи других дат отбрасываются.
func BusyIntervalsFor(date domain.CalendarDate, records []*domain.Appointment) []domain.BusyInterval {
	busy := make([]domain.BusyInterval, 0, len(records))
	for _, record := range records {
		if !record.IsActive() || !record.Date.Equal(date) {
			continue
		}
		interval, ok := domain.BusyIntervalFromAppointment(record)
		if !ok {
			continue
		}
		busy = append(busy, interval)
	}
	return busy
}
