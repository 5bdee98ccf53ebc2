package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ConfigRepository интерфейс источника настроек онлайн-записи
type ConfigRepository interface {
	GetByOrganization(ctx context.Context, organizationID int64) (*domain.BookingConfiguration, error)
}

// AppointmentRepository интерфейс репозитория занятых записей
type AppointmentRepository interface {
	// ListActiveBookings неотмененные онлайн-бронирования, начинающиеся в [from, to)
	ListActiveBookings(ctx context.Context, organizationID int64, from, to time.Time) ([]*domain.Booking, error)
	// ListActiveVisits неотмененные визиты, запланированные в [from, to)
	ListActiveVisits(ctx context.Context, organizationID int64, from, to time.Time) ([]*domain.Visit, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetActiveByID(ctx context.Context, organizationID, serviceID int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
