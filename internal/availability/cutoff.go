package availability

import (
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// ApplyCutoff убирает кандидатов, начинающихся раньше, чем через
// leadMinutes от текущего момента. Правило действует только когда
// запрошенная дата - сегодня; для будущих дат список возвращается как есть.
func ApplyCutoff(
	candidates []domain.SlotCandidate,
	date domain.CalendarDate,
	now time.Time,
	leadMinutes int,
) []domain.SlotCandidate {
	if !date.Equal(domain.DateFromTime(now)) {
		return candidates
	}

	cutoff := now.Hour()*60 + now.Minute() + leadMinutes

	free := make([]domain.SlotCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.StartMinute < cutoff {
			continue
		}
		free = append(free, candidate)
	}

	return free
}
