package domain

import (
	"time"
	_ "time/tzdata"
)

// TimeRange is a wall-clock interval in "HH:MM" form
// Values stay raw strings so malformed settings surface when availability is computed
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorkingHours maps weekday index (0 = Sunday ... 6 = Saturday) to the open interval
// A missing key means the organization is closed that day
type WorkingHours map[int]TimeRange

// BookingConfiguration represents the booking settings of an organization
type BookingConfiguration struct {
	OrganizationID      int64
	WorkingHours        WorkingHours
	SlotDurationMinutes int
	MinAdvanceHours     int
	BreakTime           *TimeRange // nil = no break
	TimeZone            string     // IANA name, empty = UTC
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasBreak returns true if a daily break window is configured
func (c *BookingConfiguration) HasBreak() bool {
	return c.BreakTime != nil
}

// Location resolves the organization time zone
func (c *BookingConfiguration) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}
