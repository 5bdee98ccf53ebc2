package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Appointment занятая запись в общем виде: начало и длительность
type Appointment struct {
	StartsAt        time.Time
	DurationMinutes *int // nil = domain.DefaultAppointmentDurationMinutes
}

// BusySource источник занятых записей (одна коллекция)
// Отмененные записи и записи вне целевой даты отфильтровываются до вызова движка
type BusySource interface {
	Appointments() []Appointment
}

// AppointmentList готовый список записей
type AppointmentList []Appointment

// Appointments реализует BusySource
func (l AppointmentList) Appointments() []Appointment {
	return l
}

// BookingSource адаптер онлайн-бронирований
type BookingSource []*domain.Booking

// Appointments реализует BusySource
func (s BookingSource) Appointments() []Appointment {
	result := make([]Appointment, 0, len(s))
	for _, b := range s {
		result = append(result, Appointment{StartsAt: b.StartsAt, DurationMinutes: b.DurationMinutes})
	}
	return result
}

// VisitSource адаптер визитов, созданных сотрудниками
type VisitSource []*domain.Visit

// Appointments реализует BusySource
func (s VisitSource) Appointments() []Appointment {
	result := make([]Appointment, 0, len(s))
	for _, v := range s {
		result = append(result, Appointment{StartsAt: v.ScheduledAt, DurationMinutes: v.DurationMinutes})
	}
	return result
}

// AggregateBusy приводит записи из всех источников к отсортированному списку
// полуоткрытых интервалов в минутах от полуночи (по локальному времени loc)
// Пересекающиеся интервалы не объединяются
func AggregateBusy(loc *time.Location, sources ...BusySource) ([]domain.BusyInterval, error) {
	intervals := make([]domain.BusyInterval, 0)

	for _, source := range sources {
		if source == nil {
			continue
		}
		for _, appt := range source.Appointments() {
			interval, err := toBusyInterval(appt, loc)
			if err != nil {
				return nil, err
			}
			intervals = append(intervals, interval)
		}
	}

	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].StartMinutes != intervals[j].StartMinutes {
			return intervals[i].StartMinutes < intervals[j].StartMinutes
		}
		return intervals[i].EndMinutes < intervals[j].EndMinutes
	})

	return intervals, nil
}

func toBusyInterval(appt Appointment, loc *time.Location) (domain.BusyInterval, error) {
	if appt.StartsAt.IsZero() {
		return domain.BusyInterval{}, fmt.Errorf("%w: committed appointment has no start time", ErrInvalidInput)
	}

	duration := domain.DefaultAppointmentDurationMinutes
	if appt.DurationMinutes != nil {
		duration = *appt.DurationMinutes
	}
	if duration <= 0 {
		return domain.BusyInterval{}, fmt.Errorf("%w: committed appointment at %s has non-positive duration %d",
			ErrInvalidInput, appt.StartsAt.Format(time.RFC3339), duration)
	}

	local := appt.StartsAt.In(loc)
	start := local.Hour()*60 + local.Minute()

	return domain.BusyInterval{StartMinutes: start, EndMinutes: start + duration}, nil
}
