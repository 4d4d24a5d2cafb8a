package availability

import "github.com/m04kA/Lemo-AvailabilityService/internal/domain"

// FilterFree убирает кандидатов, пересекающихся с занятыми интервалами.
// Кандидат отбрасывается, если хотя бы один BusyInterval одновременно:
//   - относится к тому же ресурсу (или одна из сторон не привязана к ресурсу),
//   - пересекается с [t, t+duration) по полуоткрытому правилу.
//
// Список busy может содержать вперемешку записи бронирований и перерывов -
// после материализации в BusyInterval они блокируют одинаково.
func FilterFree(
	candidates []domain.SlotCandidate,
	busy []domain.BusyInterval,
	durationMinutes int,
	resource string,
) []domain.SlotCandidate {
	free := make([]domain.SlotCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		if overlapsAnyBusy(candidate.StartMinute, durationMinutes, busy, resource) {
			continue
		}
		free = append(free, candidate)
	}

	return free
}

func overlapsAnyBusy(t, durationMinutes int, busy []domain.BusyInterval, resource string) bool {
	for _, b := range busy {
		if !domain.SameResource(b.Resource, resource) {
			continue
		}
		// Строгие неравенства: граничащие интервалы не пересекаются
		if t < b.EndMinute() && b.StartMinute < t+durationMinutes {
			return true
		}
	}
	return false
}

// HasFullDayBlock возвращает true, если среди занятых интервалов есть
// запись-перерыв, относящаяся к ресурсу. При консервативной политике
// (full_day_break) такая запись блокирует весь день целиком.
func HasFullDayBlock(busy []domain.BusyInterval, resource string) bool {
	for _, b := range busy {
		if b.Kind == domain.KindBreak && domain.SameResource(b.Resource, resource) {
			return true
		}
	}
	return false
}
