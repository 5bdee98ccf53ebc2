package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && req.DurationMinutes != nil {
		return fmt.Errorf("%w: serviceID and durationMinutes are mutually exclusive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 || *req.DurationMinutes > domain.MaxServiceDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
		}
	}

	return nil
}

// localDay возвращает полночь даты запроса в часовом поясе организации
func localDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// fetchWindow интервал выборки записей в UTC
// Часовой пояс организации до чтения настроек неизвестен, поэтому интервал расширен на сутки в обе стороны
func fetchWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -1), day.AddDate(0, 0, 2)
}

// isSameDay проверяет, что момент t приходится на локальный день day
func isSameDay(t time.Time, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func bookingsOnDay(bookings []*domain.Booking, day time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() && isSameDay(b.StartsAt, day) {
			result = append(result, b)
		}
	}
	return result
}

func visitsOnDay(visits []*domain.Visit, day time.Time) []*domain.Visit {
	result := make([]*domain.Visit, 0, len(visits))
	for _, v := range visits {
		if v.IsActive() && isSameDay(v.ScheduledAt, day) {
			result = append(result, v)
		}
	}
	return result
}
