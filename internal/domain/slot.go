package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Slot is a candidate start time of the day grid with its availability flag
type Slot struct {
	Time      types.TimeString
	Available bool
}

// BusyInterval is a committed half-open interval [StartMinutes, EndMinutes)
// expressed in minutes since local midnight of the target date
type BusyInterval struct {
	StartMinutes int
	EndMinutes   int
}

// Overlaps reports whether [start, end) intersects the interval
func (b BusyInterval) Overlaps(start, end int) bool {
	return start < b.EndMinutes && end > b.StartMinutes
}
