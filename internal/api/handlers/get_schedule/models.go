package get_schedule

import (
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/types"
)

// WeekdaySchedule рабочее окно одного дня недели
type WeekdaySchedule struct {
	Weekday   string `json:"weekday"`
	Closed    bool   `json:"closed"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// BreakWindow интервал перерыва
type BreakWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleResponse HTTP response model: недельное расписание
// и параметры слотов, по которым считается доступность
type ScheduleResponse struct {
	Days            []WeekdaySchedule `json:"days"`
	Breaks          []BreakWindow     `json:"breaks"`
	Barbers         []string          `json:"barbers"`
	DurationMinutes int               `json:"durationMinutes"`
	StepMinutes     int               `json:"stepMinutes"`
	LeadMinutes     int               `json:"leadMinutes"`
	HorizonDays     int               `json:"horizonDays"`
}

// FromParams строит HTTP response из конфигурации движка
func FromParams(params availability.Params, horizonDays int) *ScheduleResponse {
	schedule := params.Schedule

	closed := make(map[time.Weekday]bool, len(schedule.ClosedWeekdays))
	for _, weekday := range schedule.ClosedWeekdays {
		closed[weekday] = true
	}

	days := make([]WeekdaySchedule, 0, 7)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := WeekdaySchedule{
			Weekday: weekday.String(),
			Closed:  closed[weekday],
		}
		if !day.Closed {
			closeMinute := schedule.CloseMinute
			if override, ok := schedule.CloseOverrides[weekday]; ok {
				closeMinute = override
			}
			day.OpenTime = types.FromMinutes(schedule.OpenMinute).String()
			day.CloseTime = types.FromMinutes(closeMinute).String()
		}
		days = append(days, day)
	}

	breaks := make([]BreakWindow, len(schedule.Breaks))
	for i, br := range schedule.Breaks {
		breaks[i] = BreakWindow{
			StartTime: types.FromMinutes(br.StartMinute).String(),
			EndTime:   types.FromMinutes(br.EndMinute).String(),
		}
	}

	return &ScheduleResponse{
		Days:            days,
		Breaks:          breaks,
		Barbers:         domain.Resources(),
		DurationMinutes: params.DurationMinutes,
		StepMinutes:     params.StepMinutes,
		LeadMinutes:     params.LeadMinutes,
		HorizonDays:     horizonDays,
	}
}
