package bookingconfig

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// cachedConfig представление настроек в Redis
type cachedConfig struct {
	OrganizationID      int64                    `json:"organizationId"`
	WorkingHours        map[int]domain.TimeRange `json:"workingHours"`
	SlotDurationMinutes int                      `json:"slotDurationMinutes"`
	MinAdvanceHours     int                      `json:"minAdvanceHours"`
	BreakTime           *domain.TimeRange        `json:"breakTime,omitempty"`
	TimeZone            string                   `json:"timeZone"`
	CreatedAt           time.Time                `json:"createdAt"`
	UpdatedAt           time.Time                `json:"updatedAt"`
}

func toCached(c *domain.BookingConfiguration) cachedConfig {
	return cachedConfig{
		OrganizationID:      c.OrganizationID,
		WorkingHours:        c.WorkingHours,
		SlotDurationMinutes: c.SlotDurationMinutes,
		MinAdvanceHours:     c.MinAdvanceHours,
		BreakTime:           c.BreakTime,
		TimeZone:            c.TimeZone,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (c cachedConfig) toDomain() *domain.BookingConfiguration {
	hours := domain.WorkingHours(c.WorkingHours)
	if hours == nil {
		hours = domain.WorkingHours{}
	}
	return &domain.BookingConfiguration{
		OrganizationID:      c.OrganizationID,
		WorkingHours:        hours,
		SlotDurationMinutes: c.SlotDurationMinutes,
		MinAdvanceHours:     c.MinAdvanceHours,
		BreakTime:           c.BreakTime,
		TimeZone:            c.TimeZone,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
