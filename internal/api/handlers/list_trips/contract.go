package list_trips

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/trips/models"
)

type TripService interface {
	List(ctx context.Context) (*models.TripListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
