package create_booking

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	IncrementBookings(ctx context.Context, tripID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
