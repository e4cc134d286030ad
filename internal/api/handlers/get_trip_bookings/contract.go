package get_trip_bookings

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/bookings/models"
)

type BookingService interface {
	GetTripBookings(ctx context.Context, tripID string, userID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
