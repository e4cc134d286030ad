package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/opentrip/OTS-Backend/internal/domain"
	"github.com/opentrip/OTS-Backend/pkg/dbmetrics"
	"github.com/opentrip/OTS-Backend/pkg/psqlbuilder"
)

// колонки бронирования с участником (для select с join)
var bookingColumns = []string{
	"b.id",
	"b.trip_id",
	"b.user_id",
	"b.status",
	"b.status_description",
	"b.status_reason",
	"b.transaction_id",
	"b.created_at",
	"b.updated_at",
	"p.id",
	"p.name",
	"p.phone_number",
	"p.pickup_point",
	"p.gender",
	"p.nationality",
	"p.date_of_birth",
	"p.notes",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе с участником
// Вызывается внутри транзакции usecase создания бронирования
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	p := booking.Participant
	query, args, err := psqlbuilder.Insert("participants").
		Columns("id", "name", "phone_number", "pickup_point", "gender", "nationality", "date_of_birth", "notes").
		Values(p.ID, p.Name, p.PhoneNumber, p.PickupPoint, p.Gender, p.Nationality, p.DateOfBirth, p.Notes).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build participant insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - insert participant: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"trip_id",
			"user_id",
			"participant_id",
			"status",
			"status_description",
			"status_reason",
			"transaction_id",
		).
		Values(
			booking.ID,
			booking.TripID,
			booking.UserID,
			booking.Participant.ID,
			booking.Status.Code,
			booking.Status.Description,
			nullIfEmpty(booking.Status.Reason),
			booking.TransactionID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build booking insert: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - insert booking: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с участником
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("participants p ON p.id = b.participant_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает список всех бронирований
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, "List", nil)
}

// GetByTripID получает бронирования поездки
func (r *Repository) GetByTripID(ctx context.Context, tripID string) ([]*domain.Booking, error) {
	return r.list(ctx, "GetByTripID", squirrel.Eq{"b.trip_id": tripID})
}

// GetByUserID получает бронирования пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.list(ctx, "GetByUserID", squirrel.Eq{"b.user_id": userID})
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status.Code).
		Set("status_description", status.Description).
		Set("status_reason", nullIfEmpty(status.Reason)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// SetTransactionID привязывает транзакцию оплаты к бронированию
func (r *Repository) SetTransactionID(ctx context.Context, id string, transactionID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("transaction_id", transactionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetTransactionID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetTransactionID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetTransactionID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// list выполняет выборку бронирований с опциональным фильтром
func (r *Repository) list(ctx context.Context, method string, where interface{}) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("participants p ON p.id = b.participant_id").
		OrderBy("b.created_at DESC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку бронирования с участником
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking      domain.Booking
		statusReason sql.NullString
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.TripID,
		&booking.UserID,
		&booking.Status.Code,
		&booking.Status.Description,
		&statusReason,
		&booking.TransactionID,
		&createdAt,
		&updatedAt,
		&booking.Participant.ID,
		&booking.Participant.Name,
		&booking.Participant.PhoneNumber,
		&booking.Participant.PickupPoint,
		&booking.Participant.Gender,
		&booking.Participant.Nationality,
		&booking.Participant.DateOfBirth,
		&booking.Participant.Notes,
	)
	if err != nil {
		return nil, err
	}

	booking.Status.Reason = statusReason.String
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// nullIfEmpty конвертирует пустую строку в NULL
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
