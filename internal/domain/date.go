package domain

import (
	"fmt"
	"time"
)

// CalendarDate identifies a civil calendar date (year, month, day) in the
// business's local calendar. It is deliberately not a timestamp: day
// boundaries must follow local wall-clock time, and equality/ordering are
// defined on the triple alone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate creates a CalendarDate from its components
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// DateFromTime extracts the calendar date from a time.Time in its own location
func DateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD format
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateFromTime(t), nil
}

// String returns the date in YYYY-MM-DD format
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the local midnight of this date in the given location
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of week of this date
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns the date n days after d (n may be negative)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateFromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other
func (d CalendarDate) After(other CalendarDate) bool {
	return other.Before(d)
}

// Equal reports whether d and other are the same calendar date
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// IsZero reports whether d is the zero value
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}
