package transactions

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

// TransactionRepository интерфейс репозитория транзакций
type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
