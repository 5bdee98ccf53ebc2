package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	configRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/bookingconfig"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/config/models"
)

// Service сервис для работы с настройками онлайн-записи
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get получает настройки организации
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, organizationID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching booking config for organization=%d", organizationID)

	config, err := s.configRepo.GetByOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: booking config for organization=%d not found", organizationID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error for organization=%d: %v", organizationID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched booking config for organization=%d", organizationID)
	return models.FromDomainConfig(config), nil
}

// Upsert создает или полностью заменяет настройки организации
// Настройки проверяются целиком, чтобы ошибки не доходили до расчета слотов
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: saving booking config for organization=%d by user=%d", req.OrganizationID, req.UserID)

	// 1. Конвертируем запрос в domain модель
	config, err := req.ToDomainConfig()
	if err != nil {
		s.logger.Warn("Upsert: invalid weekday key for organization=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: weekday keys must be integers 0..6: %v", ErrInvalidInput, err)
	}

	// 2. Валидируем настройки теми же правилами, что использует движок
	if err := availability.ValidateConfiguration(config); err != nil {
		s.logger.Warn("Upsert: validation failed for organization=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Сохраняем
	saved, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Upsert: repository error for organization=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved booking config for organization=%d", req.OrganizationID)
	return models.FromDomainConfig(saved), nil
}
