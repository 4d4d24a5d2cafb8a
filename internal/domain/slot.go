package domain

import "github.com/m04kA/Lemo-AvailabilityService/pkg/types"

// SlotCandidate is a candidate appointment start time within one day
type SlotCandidate struct {
	StartMinute int
	Label       string // zero-padded HH:MM in local time
}

// NewSlotCandidate creates a candidate with its derived label
func NewSlotCandidate(startMinute int) SlotCandidate {
	return SlotCandidate{
		StartMinute: startMinute,
		Label:       types.FromMinutes(startMinute).String(),
	}
}

// DayAvailability is the availability result for a single date
type DayAvailability struct {
	Date      CalendarDate
	FreeSlots []SlotCandidate
	// Degraded is true when the appointment source could not be reached
	// and the result assumes no known bookings (fail-open)
	Degraded bool
}

// Count returns the number of free slots
func (d DayAvailability) Count() int {
	return len(d.FreeSlots)
}

// Labels returns the ascending HH:MM labels of the free slots
func (d DayAvailability) Labels() []string {
	labels := make([]string, len(d.FreeSlots))
	for i, slot := range d.FreeSlots {
		labels[i] = slot.Label
	}
	return labels
}

// FirstAvailable is the earliest date with at least one free slot
type FirstAvailable struct {
	Date  CalendarDate
	Slots []string
}

// HorizonResult is the aggregated availability over an inclusive date range
type HorizonResult struct {
	Counts map[CalendarDate]int
	// Slots is populated only when slot labels were requested
	Slots          map[CalendarDate][]string
	FirstAvailable *FirstAvailable
	// Degraded is true when any day in the range was computed without
	// reachable appointment data
	Degraded bool
}
