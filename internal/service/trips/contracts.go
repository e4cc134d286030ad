package trips

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	AddSchedule(ctx context.Context, tripID string, schedule domain.Schedule) error
	AssignGuide(ctx context.Context, tripID string, guide *domain.Guide) error
	UpdateCapacity(ctx context.Context, tripID string, capacity int) error
	UpdateItinerary(ctx context.Context, tripID string, itinerary *domain.Itinerary) error
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
