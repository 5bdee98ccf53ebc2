package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DayWindow рабочий интервал дня в минутах от полуночи
type DayWindow struct {
	OpenMinutes  int
	CloseMinutes int
}

// Length длительность рабочего дня в минутах
func (w DayWindow) Length() int {
	return w.CloseMinutes - w.OpenMinutes
}

// ResolveWorkingHours возвращает рабочий интервал на дату
// Второе значение false означает, что в этот день организация закрыта
// Индекс дня недели: 0 = воскресенье (совпадает с time.Weekday)
func ResolveWorkingHours(date time.Time, hours domain.WorkingHours) (DayWindow, bool, error) {
	weekday := int(date.Weekday())

	day, ok := hours[weekday]
	if !ok {
		return DayWindow{}, false, nil
	}

	openAt, closeAt, err := parseRange(day)
	if err != nil {
		return DayWindow{}, false, fmt.Errorf("%w: working hours for weekday %d: %v", ErrConfiguration, weekday, err)
	}

	return DayWindow{OpenMinutes: openAt, CloseMinutes: closeAt}, true, nil
}

// parseRange разбирает интервал "HH:MM"-"HH:MM" и проверяет, что start < end
func parseRange(r domain.TimeRange) (int, int, error) {
	start, err := types.NewTimeStringFromString(r.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := types.NewTimeStringFromString(r.End)
	if err != nil {
		return 0, 0, err
	}
	if !start.IsBefore(end) {
		return 0, 0, fmt.Errorf("start %s is not before end %s", start, end)
	}
	return start.Minutes(), end.Minutes(), nil
}
