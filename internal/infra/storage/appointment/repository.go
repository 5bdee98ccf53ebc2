package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий занятых записей: онлайн-бронирования и визиты
// Только чтение: создание записей выполняется другими сервисами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveBookings возвращает неотмененные бронирования организации,
// начинающиеся в интервале [from, to)
func (r *Repository) ListActiveBookings(ctx context.Context, organizationID int64, from, to time.Time) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"service_id",
		"client_name",
		"client_phone",
		"starts_at",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"organization_id": organizationID}).
		Where(squirrel.GtOrEq{"starts_at": from}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Expr("status <> ALL(?)", pq.Array(bookingStatusStrings(domain.InactiveBookingStatuses)))).
		OrderBy("starts_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var (
			booking   domain.Booking
			serviceID sql.NullInt64
			duration  sql.NullInt32
			phone     sql.NullString
		)
		if err := rows.Scan(
			&booking.ID,
			&booking.OrganizationID,
			&serviceID,
			&booking.ClientName,
			&phone,
			&booking.StartsAt,
			&duration,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveBookings - scan row: %v", ErrScanRow, err)
		}

		if serviceID.Valid {
			booking.ServiceID = &serviceID.Int64
		}
		booking.DurationMinutes = nullableInt(duration)
		booking.ClientPhone = phone.String

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListActiveVisits возвращает неотмененные визиты организации,
// запланированные в интервале [from, to)
func (r *Repository) ListActiveVisits(ctx context.Context, organizationID int64, from, to time.Time) ([]*domain.Visit, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"client_id",
		"scheduled_at",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("visits").
		Where(squirrel.Eq{"organization_id": organizationID}).
		Where(squirrel.GtOrEq{"scheduled_at": from}).
		Where(squirrel.Lt{"scheduled_at": to}).
		Where(squirrel.Expr("status <> ALL(?)", pq.Array(visitStatusStrings(domain.InactiveVisitStatuses)))).
		OrderBy("scheduled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveVisits - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveVisits - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	visits := make([]*domain.Visit, 0)
	for rows.Next() {
		var (
			visit    domain.Visit
			duration sql.NullInt32
		)
		if err := rows.Scan(
			&visit.ID,
			&visit.OrganizationID,
			&visit.ClientID,
			&visit.ScheduledAt,
			&duration,
			&visit.Status,
			&visit.CreatedAt,
			&visit.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveVisits - scan row: %v", ErrScanRow, err)
		}

		visit.DurationMinutes = nullableInt(duration)
		visits = append(visits, &visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveVisits - rows error: %v", ErrScanRow, err)
	}

	return visits, nil
}

func nullableInt(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func bookingStatusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

func visitStatusStrings(statuses []domain.VisitStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
