package confirm_booking

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
