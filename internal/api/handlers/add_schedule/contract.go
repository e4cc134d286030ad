package add_schedule

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/trips/models"
)

type TripService interface {
	AddSchedule(ctx context.Context, tripID string, req *models.AddScheduleRequest) (*models.TripResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
