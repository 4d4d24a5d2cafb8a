package domain

import "time"

// BusinessWindow is a day's opening hours in minutes since local midnight
type BusinessWindow struct {
	OpenMinute  int
	CloseMinute int
}

// Length returns the window length in minutes
func (w BusinessWindow) Length() int {
	return w.CloseMinute - w.OpenMinute
}

// BreakInterval is a recurring daily blocked interval in minutes since
// local midnight, e.g. the 13:00-14:00 lunch break
type BreakInterval struct {
	StartMinute int
	EndMinute   int
}

// WeeklySchedule maps a calendar date to its opening window and breaks.
// The policy is a pure function of the weekday: a set of closed weekdays,
// per-weekday close-time overrides and a shared open/close window, plus
// recurring daily breaks identical on every open day.
type WeeklySchedule struct {
	OpenMinute     int
	CloseMinute    int
	ClosedWeekdays []time.Weekday
	// CloseOverrides maps a weekday to an earlier close time
	// (e.g. Saturday closes at 17:40 instead of 19:00)
	CloseOverrides map[time.Weekday]int
	Breaks         []BreakInterval
}

// DefaultWeeklySchedule returns the barbershop schedule:
// closed Sunday and Monday, Tue-Fri 09:00-19:00, Saturday 09:00-17:40,
// one daily break 13:00-14:00
func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		OpenMinute:     9 * 60,
		CloseMinute:    19 * 60,
		ClosedWeekdays: []time.Weekday{time.Sunday, time.Monday},
		CloseOverrides: map[time.Weekday]int{
			time.Saturday: 17*60 + 40,
		},
		Breaks: []BreakInterval{
			{StartMinute: 13 * 60, EndMinute: 14 * 60},
		},
	}
}

// IsClosed reports whether the business is closed on the given date
func (s WeeklySchedule) IsClosed(date CalendarDate) bool {
	weekday := date.Weekday()
	for _, closed := range s.ClosedWeekdays {
		if weekday == closed {
			return true
		}
	}
	return false
}

// WindowFor returns the opening window for the given date,
// or ok=false when the business is closed that day
func (s WeeklySchedule) WindowFor(date CalendarDate) (BusinessWindow, bool) {
	if s.IsClosed(date) {
		return BusinessWindow{}, false
	}

	closeMinute := s.CloseMinute
	if override, ok := s.CloseOverrides[date.Weekday()]; ok {
		closeMinute = override
	}

	return BusinessWindow{OpenMinute: s.OpenMinute, CloseMinute: closeMinute}, true
}

// BreaksFor returns the blocked intervals for the given date.
// Empty on closed days (there is nothing to block)
func (s WeeklySchedule) BreaksFor(date CalendarDate) []BreakInterval {
	if s.IsClosed(date) {
		return nil
	}
	return s.Breaks
}
