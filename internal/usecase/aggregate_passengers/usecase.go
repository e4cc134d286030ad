package aggregate_passengers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tripRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/trip"
)

// UseCase use case для агрегации пассажиров поездки
// Собирает участников активных бронирований и дополняет их адресами
// точек посадки из Travel Planner
type UseCase struct {
	bookingRepo   BookingRepository
	tripRepo      TripRepository
	plannerClient PlannerServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	plannerClient PlannerServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		tripRepo:      tripRepo,
		plannerClient: plannerClient,
		logger:        logger,
	}
}

// Execute выполняет use case агрегации пассажиров
// Недоступность Travel Planner не роняет запрос: пассажиры возвращаются
// без адресов точек посадки, в ответе выставляется Degraded
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AggregatePassengers: trip=%s", req.TripID)

	if strings.TrimSpace(req.TripID) == "" {
		uc.logger.Warn("AggregatePassengers: empty tripID")
		return nil, fmt.Errorf("%w: tripID is required", ErrInvalidInput)
	}

	// 1. Проверяем существование поездки
	trip, err := uc.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			uc.logger.Warn("AggregatePassengers: trip id=%s not found", req.TripID)
			return nil, ErrTripNotFound
		}
		uc.logger.Error("AggregatePassengers: failed to get trip id=%s: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
	}

	// 2. Получаем бронирования поездки
	bookings, err := uc.bookingRepo.GetByTripID(ctx, req.TripID)
	if err != nil {
		uc.logger.Error("AggregatePassengers: failed to get bookings for trip id=%s: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Собираем пассажиров активных бронирований
	passengers := make([]Passenger, 0, len(bookings))
	pickupIDs := make([]string, 0, len(bookings))
	seenPickups := make(map[string]struct{})

	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}

		passengers = append(passengers, Passenger{
			BookingID:     booking.ID,
			Name:          booking.Participant.Name,
			PhoneNumber:   booking.Participant.PhoneNumber,
			PickupPoint:   booking.Participant.PickupPoint,
			BookingStatus: string(booking.Status.Code),
		})

		if _, ok := seenPickups[booking.Participant.PickupPoint]; !ok {
			seenPickups[booking.Participant.PickupPoint] = struct{}{}
			pickupIDs = append(pickupIDs, booking.Participant.PickupPoint)
		}
	}

	resp := &Response{
		TripID:     trip.ID,
		TripName:   trip.Name,
		Passengers: passengers,
	}

	if len(pickupIDs) == 0 {
		uc.logger.Info("AggregatePassengers: no active passengers for trip id=%s", req.TripID)
		return resp, nil
	}

	// 4. Разрешаем адреса точек посадки через Travel Planner
	points, err := uc.plannerClient.GetPickupPointsWithGracefulDegradation(ctx, pickupIDs)
	if err != nil {
		// Graceful degradation: пассажиры возвращаются без адресов
		uc.logger.Warn("AggregatePassengers: planner degraded for trip id=%s: %v", req.TripID, err)
		resp.Degraded = true
		return resp, nil
	}

	addressByID := make(map[string]string, len(points))
	for _, point := range points {
		addressByID[point.ID] = point.Location
	}

	for i := range resp.Passengers {
		if address, ok := addressByID[resp.Passengers[i].PickupPoint]; ok {
			resp.Passengers[i].PickupAddress = &address
		}
	}

	uc.logger.Info("AggregatePassengers: resolved %d pickup points for %d passengers of trip id=%s",
		len(points), len(passengers), req.TripID)
	return resp, nil
}
