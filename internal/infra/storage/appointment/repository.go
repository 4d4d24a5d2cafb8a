package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/psqlbuilder"
)

// appointmentColumns общий список колонок таблицы appointments
var appointmentColumns = []string{
	"id",
	"customer_name",
	"phone_number",
	"email",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"resource",
	"kind",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей для standalone-режима, когда сервис
// сам хранит бронирования вместо внешнего booking backend
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись (бронирование или перерыв).
// Идентификатор генерируется на стороне приложения (uuid).
// Если в контексте передана активная транзакция, использует её -
// создание брони выполняется в сериализуемой транзакции с повторной
// проверкой занятости слота (см. usecase create_appointment).
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = domain.StatusConfirmed
	}
	if a.Kind == "" {
		a.Kind = domain.KindAppointment
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"customer_name",
			"phone_number",
			"email",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"resource",
			"kind",
			"status",
		).
		Values(
			a.ID,
			a.CustomerName,
			a.PhoneNumber,
			a.Email,
			a.Date.String(),
			a.StartTime,
			a.DurationMinutes,
			a.Resource,
			string(a.Kind),
			string(a.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает запись по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appointment, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// ListRange получает активные записи за диапазон дат включительно
// с опциональной фильтрацией по ресурсу.
//
// Записи без ресурса (пустая строка в resource) блокируют всех барберов, поэтому
// при фильтрации по ресурсу они тоже попадают в выборку.
//
// Если вызов выполняется внутри транзакции и диапазон сведён к одной
// дате, добавляется FOR UPDATE - это путь создания брони с блокировкой
// записей дня от конкурентных вставок.
func (r *Repository) ListRange(ctx context.Context, filter domain.RangeFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": filter.From.String()}).
		Where(squirrel.LtOrEq{"appointment_date": filter.To.String()}).
		Where(squirrel.NotEq{"status": []string{
			string(domain.StatusCancelled),
			string(domain.StatusNoShow),
		}})

	if filter.Resource != "" {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"resource": domain.NormalizeResource(filter.Resource)},
			squirrel.Eq{"resource": ""},
		})
	}

	selectBuilder = selectBuilder.OrderBy("appointment_date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.From.Equal(filter.To) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a         domain.Appointment
		dateStr   string
		kind      string
		status    string
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.CustomerName,
		&a.PhoneNumber,
		&a.Email,
		&dateStr,
		&a.StartTime,
		&a.DurationMinutes,
		&a.Resource,
		&kind,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Postgres DATE сканируется как "2006-01-02T00:00:00Z" либо "2006-01-02"
	if len(dateStr) >= len(domain.DateFormat) {
		dateStr = dateStr[:len(domain.DateFormat)]
	}
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	a.Date = date
	a.Kind = domain.RecordKind(kind)
	a.Status = domain.AppointmentStatus(status)
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate appointment rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isUniqueViolation проверяет, что ошибка Postgres - нарушение
// уникального индекса (код 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
