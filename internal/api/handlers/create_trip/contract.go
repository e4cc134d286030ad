package create_trip

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/trips/models"
)

type TripService interface {
	Create(ctx context.Context, req *models.CreateTripRequest) (*models.TripResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
