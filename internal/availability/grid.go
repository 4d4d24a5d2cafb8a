package availability

import "github.com/m04kA/Lemo-AvailabilityService/internal/domain"

// GenerateGrid генерирует упорядоченный список кандидатов слотов на день.
// Сетка начинается с открытия и идёт с шагом stepMinutes; кандидат t
// попадает в сетку, если услуга целиком помещается до закрытия
// (t + durationMinutes <= close) и интервал [t, t+duration) не
// пересекается ни с одним перерывом.
//
// Порядок кандидатов значим: он возвращается клиентам и используется
// для поиска первого доступного дня.
func GenerateGrid(
	window domain.BusinessWindow,
	breaks []domain.BreakInterval,
	durationMinutes int,
	stepMinutes int,
) []domain.SlotCandidate {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return []domain.SlotCandidate{}
	}

	candidates := make([]domain.SlotCandidate, 0)

	for t := window.OpenMinute; t+durationMinutes <= window.CloseMinute; t += stepMinutes {
		if overlapsAnyBreak(t, durationMinutes, breaks) {
			continue
		}
		candidates = append(candidates, domain.NewSlotCandidate(t))
	}

	return candidates
}

// overlapsAnyBreak проверяет пересечение кандидата [t, t+duration)
// с перерывами по полуоткрытому правилу: граничащие интервалы
// (перерыв заканчивается ровно в начале слота или наоборот) не считаются
// пересечением
func overlapsAnyBreak(t, durationMinutes int, breaks []domain.BreakInterval) bool {
	for _, br := range breaks {
		if t < br.EndMinute && br.StartMinute < t+durationMinutes {
			return true
		}
	}
	return false
}
