package get_available_slots

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

var (
	errMissingDate      = errors.New("date is required")
	errInvalidDate      = errors.New("invalid date format")
	errInvalidServiceID = errors.New("invalid serviceId")
	errInvalidDuration  = errors.New("invalid durationMinutes")
	errBothDurations    = errors.New("serviceId and durationMinutes are mutually exclusive")
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                   string          `json:"date"`
	OrganizationID         int64           `json:"organizationId"`
	ServiceDurationMinutes int             `json:"serviceDurationMinutes"`
	Slots                  []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		OrganizationID:         resp.OrganizationID,
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		Slots:                  slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// date обязателен, serviceId и durationMinutes опциональны и взаимоисключающи
func ToUseCaseRequest(organizationID int64, query url.Values) (*getAvailableSlots.Request, error) {
	dateStr := query.Get("date")
	if dateStr == "" {
		return nil, errMissingDate
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &getAvailableSlots.Request{
		OrganizationID: organizationID,
		Date:           date,
	}

	serviceIDStr := query.Get("serviceId")
	durationStr := query.Get("durationMinutes")

	if serviceIDStr != "" && durationStr != "" {
		return nil, errBothDurations
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil || serviceID <= 0 {
			return nil, errInvalidServiceID
		}
		req.ServiceID = &serviceID
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil || duration <= 0 || duration > domain.MaxServiceDurationMinutes {
			return nil, errInvalidDuration
		}
		req.DurationMinutes = &duration
	}

	return req, nil
}
