package domain

import (
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// RecordKind distinguishes real appointments from blocking break records
// (a barber's day off arrives from the backend as a "break" record)
type RecordKind string

const (
	KindAppointment RecordKind = "appointment"
	KindBreak       RecordKind = "break"
)

// Appointment represents one appointment or break record
type Appointment struct {
	ID              string
	CustomerName    string
	PhoneNumber     string
	Email           *string
	Date            CalendarDate
	StartTime       types.TimeString
	DurationMinutes int
	Resource        string // canonical barber id, "" = unscoped (blocks all barbers)
	Kind            RecordKind
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the record still blocks its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// IsBreak returns true for break (blocking) records
func (a *Appointment) IsBreak() bool {
	return a.Kind == KindBreak
}

// BusyInterval is one blocked interval on a specific date, derived from an
// appointment or break record. Minutes are since local midnight.
type BusyInterval struct {
	StartMinute     int
	DurationMinutes int
	Resource        string // canonical barber id, "" = blocks all barbers
	Kind            RecordKind
}

// EndMinute returns the exclusive end of the interval
func (b BusyInterval) EndMinute() int {
	return b.StartMinute + b.DurationMinutes
}

// BusyIntervalFromAppointment converts an active record into its busy interval.
// Returns ok=false for records whose start time cannot be interpreted.
func BusyIntervalFromAppointment(a *Appointment) (BusyInterval, bool) {
	start, err := a.StartTime.Minutes()
	if err != nil {
		return BusyInterval{}, false
	}
	duration := a.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}
	return BusyInterval{
		StartMinute:     start,
		DurationMinutes: duration,
		Resource:        a.Resource,
		Kind:            a.Kind,
	}, true
}

// RangeFilter filters appointment records for a date range
type RangeFilter struct {
	From     CalendarDate
	To       CalendarDate // inclusive
	Resource string       // canonical barber id, "" = all barbers
}
