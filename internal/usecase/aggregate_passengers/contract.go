package aggregate_passengers

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/domain"
	"github.com/opentrip/OTS-Backend/internal/integrations/plannerservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTripID(ctx context.Context, tripID string) ([]*domain.Booking, error)
}

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
}

// PlannerServiceClient интерфейс клиента для Travel Planner
type PlannerServiceClient interface {
	GetPickupPointsWithGracefulDegradation(ctx context.Context, ids []string) ([]plannerservice.PickupPoint, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
