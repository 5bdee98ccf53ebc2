package bookingconfig

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Repository источник настроек, перед которым стоит кэш
type Repository interface {
	GetByOrganization(ctx context.Context, organizationID int64) (*domain.BookingConfiguration, error)
	Upsert(ctx context.Context, config *domain.BookingConfiguration) (*domain.BookingConfiguration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
