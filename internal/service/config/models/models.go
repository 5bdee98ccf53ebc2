package models

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// TimeRange интервал "HH:MM"-"HH:MM"
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UpsertConfigRequest запрос на сохранение настроек онлайн-записи
// Настройки сохраняются целиком, частичное обновление не поддерживается
type UpsertConfigRequest struct {
	UserID              int64                `json:"-"`
	OrganizationID      int64                `json:"-"`
	WorkingHours        map[string]TimeRange `json:"workingHours"`        // ключ - день недели, "0" = воскресенье
	SlotDurationMinutes *int                 `json:"slotDurationMinutes"` // nil = значение по умолчанию
	MinAdvanceHours     *int                 `json:"minAdvanceHours"`     // nil = значение по умолчанию
	BreakTime           *TimeRange           `json:"breakTime,omitempty"` // nil = без перерыва
	TimeZone            string               `json:"timeZone,omitempty"`  // IANA, пусто = UTC
}

// Response модели

// ConfigResponse ответ с настройками онлайн-записи
type ConfigResponse struct {
	OrganizationID      int64                `json:"organizationId"`
	WorkingHours        map[string]TimeRange `json:"workingHours"`
	SlotDurationMinutes int                  `json:"slotDurationMinutes"`
	MinAdvanceHours     int                  `json:"minAdvanceHours"`
	BreakTime           *TimeRange           `json:"breakTime,omitempty"`
	TimeZone            string               `json:"timeZone"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.BookingConfiguration) *ConfigResponse {
	if c == nil {
		return nil
	}

	hours := make(map[string]TimeRange, len(c.WorkingHours))
	for weekday, r := range c.WorkingHours {
		hours[strconv.Itoa(weekday)] = TimeRange{Start: r.Start, End: r.End}
	}

	var breakTime *TimeRange
	if c.BreakTime != nil {
		breakTime = &TimeRange{Start: c.BreakTime.Start, End: c.BreakTime.End}
	}

	timeZone := c.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	return &ConfigResponse{
		OrganizationID:      c.OrganizationID,
		WorkingHours:        hours,
		SlotDurationMinutes: c.SlotDurationMinutes,
		MinAdvanceHours:     c.MinAdvanceHours,
		BreakTime:           breakTime,
		TimeZone:            timeZone,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// ToDomainConfig конвертирует запрос в domain модель
// Ключи дней недели должны быть целыми числами
func (r *UpsertConfigRequest) ToDomainConfig() (*domain.BookingConfiguration, error) {
	hours := make(domain.WorkingHours, len(r.WorkingHours))
	for key, day := range r.WorkingHours {
		weekday, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}
		hours[weekday] = domain.TimeRange{Start: day.Start, End: day.End}
	}

	config := &domain.BookingConfiguration{
		OrganizationID:      r.OrganizationID,
		WorkingHours:        hours,
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		MinAdvanceHours:     domain.DefaultMinAdvanceHours,
		TimeZone:            r.TimeZone,
	}

	if r.SlotDurationMinutes != nil {
		config.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.MinAdvanceHours != nil {
		config.MinAdvanceHours = *r.MinAdvanceHours
	}
	if r.BreakTime != nil {
		config.BreakTime = &domain.TimeRange{Start: r.BreakTime.Start, End: r.BreakTime.End}
	}

	return config, nil
}
