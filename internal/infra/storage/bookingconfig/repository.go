package bookingconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const tableName = "booking_configs"

var selectColumns = []string{
	"organization_id",
	"working_hours",
	"slot_duration_minutes",
	"min_advance_hours",
	"break_start",
	"break_end",
	"time_zone",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек онлайн-записи организаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByOrganization получает настройки организации
func (r *Repository) GetByOrganization(ctx context.Context, organizationID int64) (*domain.BookingConfiguration, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	var (
		config       domain.BookingConfiguration
		workingHours []byte
		breakStart   sql.NullString
		breakEnd     sql.NullString
		timeZone     sql.NullString
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&config.OrganizationID,
		&workingHours,
		&config.SlotDurationMinutes,
		&config.MinAdvanceHours,
		&breakStart,
		&breakEnd,
		&timeZone,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrganization - scan config: %v", ErrScanRow, err)
	}

	config.WorkingHours, err = decodeWorkingHours(workingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrganization - decode working hours: %v", ErrScanRow, err)
	}

	// Перерыв задан, только если заполнены обе границы
	if breakStart.Valid && breakEnd.Valid {
		config.BreakTime = &domain.TimeRange{Start: breakStart.String, End: breakEnd.String}
	}
	config.TimeZone = timeZone.String
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или полностью заменяет настройки организации
func (r *Repository) Upsert(ctx context.Context, config *domain.BookingConfiguration) (*domain.BookingConfiguration, error) {
	workingHours, err := encodeWorkingHours(config.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert: %v", ErrEncode, err)
	}

	var breakStart, breakEnd sql.NullString
	if config.BreakTime != nil {
		breakStart = sql.NullString{String: config.BreakTime.Start, Valid: true}
		breakEnd = sql.NullString{String: config.BreakTime.End, Valid: true}
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"organization_id",
			"working_hours",
			"slot_duration_minutes",
			"min_advance_hours",
			"break_start",
			"break_end",
			"time_zone",
		).
		Values(
			config.OrganizationID,
			string(workingHours), // lib/pq передает []byte как bytea
			config.SlotDurationMinutes,
			config.MinAdvanceHours,
			breakStart,
			breakEnd,
			config.TimeZone,
		).
		Suffix(`ON CONFLICT (organization_id) DO UPDATE SET
			working_hours = EXCLUDED.working_hours,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			min_advance_hours = EXCLUDED.min_advance_hours,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			time_zone = EXCLUDED.time_zone,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// encodeWorkingHours сериализует рабочие часы в JSONB: {"1": {"start": "09:00", "end": "18:00"}}
func encodeWorkingHours(hours domain.WorkingHours) ([]byte, error) {
	if hours == nil {
		hours = domain.WorkingHours{}
	}
	return json.Marshal(hours)
}

func decodeWorkingHours(data []byte) (domain.WorkingHours, error) {
	hours := domain.WorkingHours{}
	if len(data) == 0 {
		return hours, nil
	}
	if err := json.Unmarshal(data, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}
