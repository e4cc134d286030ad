package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/opentrip/OTS-Backend/internal/domain"
	"github.com/opentrip/OTS-Backend/pkg/dbmetrics"
	"github.com/opentrip/OTS-Backend/pkg/psqlbuilder"
)

var transactionColumns = []string{
	"id",
	"booking_id",
	"total_amount",
	"status",
	"status_changed_at",
	"payment_type",
	"payment_provider",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с транзакциями оплаты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет транзакцию
// Транзакция к этому моменту уже инициирована доменной моделью (статус PENDING)
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var paymentType, paymentProvider interface{}
	if tx.Method != nil {
		paymentType = string(tx.Method.Type)
		paymentProvider = tx.Method.Provider
	}

	query, args, err := psqlbuilder.Insert("transactions").
		Columns(
			"id",
			"booking_id",
			"total_amount",
			"status",
			"status_changed_at",
			"payment_type",
			"payment_provider",
		).
		Values(
			tx.ID,
			tx.BookingID,
			tx.TotalAmount,
			tx.Status.Code,
			tx.Status.ChangedAt,
			paymentType,
			paymentProvider,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time
	tx.UpdatedAt = updatedAt.Time

	return tx, nil
}

// GetByID получает транзакцию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tx, err := r.scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan transaction: %v", ErrScanRow, err)
	}

	return tx, nil
}

// GetByBookingID получает транзакцию, привязанную к бронированию
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	tx, err := r.scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan transaction: %v", ErrScanRow, err)
	}

	return tx, nil
}

// List получает список всех транзакций
func (r *Repository) List(ctx context.Context) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("transactions").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan transaction: %v", ErrScanRow, err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// UpdateStatus обновляет статус транзакции
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("transactions").
		Set("status", status.Code).
		Set("status_changed_at", status.ChangedAt).
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
		return ErrTransactionNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTransaction сканирует строку транзакции
func (r *Repository) scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		tx              domain.Transaction
		statusChangedAt sql.NullTime
		paymentType     sql.NullString
		paymentProvider sql.NullString
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)

	err := row.Scan(
		&tx.ID,
		&tx.BookingID,
		&tx.TotalAmount,
		&tx.Status.Code,
		&statusChangedAt,
		&paymentType,
		&paymentProvider,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Status.ChangedAt = statusChangedAt.Time
	tx.CreatedAt = createdAt.Time
	tx.UpdatedAt = updatedAt.Time

	if paymentType.Valid {
		tx.Method = &domain.PaymentMethod{
			Type:     domain.PaymentType(paymentType.String),
			Provider: paymentProvider.String,
		}
	}

	return &tx, nil
}
