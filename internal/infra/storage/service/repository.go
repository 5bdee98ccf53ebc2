package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий услуг организации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByID получает активную услугу организации
// Услуга другой организации или выключенная услуга считается не найденной
func (r *Repository) GetActiveByID(ctx context.Context, organizationID, serviceID int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"name",
		"duration_minutes",
		"is_active",
	).
		From("services").
		Where(squirrel.Eq{
			"id":              serviceID,
			"organization_id": organizationID,
			"is_active":       true,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.OrganizationID,
		&service.Name,
		&service.DurationMinutes,
		&service.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}
