package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/bookingconfig"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
)

// UseCase use case для получения сетки слотов на дату
type UseCase struct {
	configRepo      ConfigRepository
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:      configRepo,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
// Чтения настроек, бронирований, визитов и услуги выполняются параллельно,
// затем результат передается в движок доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: organization=%d, date=%s, service=%v, duration=%v",
		req.OrganizationID, req.Date.Format(domain.DateFormat), req.ServiceID, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем момент расчета
	now := uc.timeProvider.Now()

	// 3. Параллельно читаем все данные
	var (
		config   *domain.BookingConfiguration
		bookings []*domain.Booking
		visits   []*domain.Visit
		service  *domain.Service
	)

	from, to := fetchWindow(req.Date)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		config, err = uc.configRepo.GetByOrganization(gctx, req.OrganizationID)
		return err
	})

	g.Go(func() error {
		var err error
		bookings, err = uc.appointmentRepo.ListActiveBookings(gctx, req.OrganizationID, from, to)
		return err
	})

	g.Go(func() error {
		var err error
		visits, err = uc.appointmentRepo.ListActiveVisits(gctx, req.OrganizationID, from, to)
		return err
	})

	if req.ServiceID != nil {
		g.Go(func() error {
			var err error
			service, err = uc.serviceRepo.GetActiveByID(gctx, req.OrganizationID, *req.ServiceID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(err, configRepo.ErrConfigNotFound):
			uc.logger.Warn("GetAvailableSlots: booking config for organization=%d not found", req.OrganizationID)
			return nil, ErrConfigNotFound
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in organization=%d", *req.ServiceID, req.OrganizationID)
			return nil, ErrServiceNotFound
		default:
			uc.logger.Error("GetAvailableSlots: failed to load data for organization=%d: %v", req.OrganizationID, err)
			return nil, fmt.Errorf("%w: failed to load data: %v", ErrInternal, err)
		}
	}

	// 4. Переводим дату в часовой пояс организации
	loc, err := config.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: organization=%d has invalid time zone %q: %v",
			req.OrganizationID, config.TimeZone, err)
		return nil, fmt.Errorf("%w: time zone %q: %v", ErrInvalidConfiguration, config.TimeZone, err)
	}
	day := localDay(req.Date, loc)

	// 5. Определяем длительность услуги (nil = шаг сетки)
	durationMinutes := req.DurationMinutes
	if service != nil {
		durationMinutes = &service.DurationMinutes
	}

	// 6. Оставляем только записи целевого дня и считаем слоты
	slots, err := availability.ComputeAvailableSlots(availability.Params{
		Date:   day,
		Config: config,
		Committed: []availability.BusySource{
			availability.BookingSource(bookingsOnDay(bookings, day)),
			availability.VisitSource(visitsOnDay(visits, day)),
		},
		ServiceDurationMinutes: durationMinutes,
		Now:                    now,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrConfiguration):
			uc.logger.Error("GetAvailableSlots: invalid booking config for organization=%d: %v", req.OrganizationID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		case errors.Is(err, availability.ErrInvalidInput):
			uc.logger.Warn("GetAvailableSlots: invalid input for organization=%d: %v", req.OrganizationID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("GetAvailableSlots: failed to compute slots for organization=%d: %v", req.OrganizationID, err)
			return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}
	}

	resolvedDuration := config.SlotDurationMinutes
	if durationMinutes != nil {
		resolvedDuration = *durationMinutes
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for organization=%d, date=%s (bookings=%d, visits=%d)",
		len(slots), req.OrganizationID, day.Format(domain.DateFormat), len(bookings), len(visits))

	return &Response{
		Date:                   day,
		OrganizationID:         req.OrganizationID,
		ServiceDurationMinutes: resolvedDuration,
		Slots:                  slots,
	}, nil
}
