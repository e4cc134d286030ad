package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/opentrip/OTS-Backend/internal/domain"
	tripRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/trip"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	tripRepo    TripRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		tripRepo:    tripRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию, чтобы два конкурентных бронирования
// не заняли последнее место одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, trip=%s, participant=%s",
		req.UserID, req.TripID, req.Participant.Name)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем поездку с блокировкой (FOR UPDATE)
		trip, err := uc.tripRepo.GetByID(txCtx, req.TripID)
		if err != nil {
			if errors.Is(err, tripRepo.ErrTripNotFound) {
				uc.logger.Warn("CreateBooking: trip id=%s not found", req.TripID)
				return ErrTripNotFound
			}
			uc.logger.Error("CreateBooking: failed to get trip id=%s: %v", req.TripID, err)
			return fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		}

		// 2.2. Проверяем наличие свободных мест
		if !trip.IsAvailableForBooking() {
			uc.logger.Warn("CreateBooking: trip id=%s is full, %d/%d spots taken",
				req.TripID, trip.CurrentBookings, trip.Capacity)
			return ErrTripFull
		}

		uc.logger.Info("CreateBooking: trip id=%s has spots, %d/%d taken",
			req.TripID, trip.CurrentBookings, trip.Capacity)

		// 2.3. Занимаем место; guarded UPDATE вернёт ErrTripFull при гонке
		if err := uc.tripRepo.IncrementBookings(txCtx, req.TripID); err != nil {
			if errors.Is(err, tripRepo.ErrTripFull) {
				uc.logger.Warn("CreateBooking: trip id=%s filled up concurrently", req.TripID)
				return ErrTripFull
			}
			uc.logger.Error("CreateBooking: failed to reserve spot on trip id=%s: %v", req.TripID, err)
			return fmt.Errorf("%w: failed to reserve spot: %v", ErrInternal, err)
		}

		// 2.4. Создаем бронирование с участником
		participant := domain.Participant{
			ID:          uuid.NewString(),
			Name:        req.Participant.Name,
			PhoneNumber: req.Participant.PhoneNumber,
			PickupPoint: req.Participant.PickupPoint,
			Gender:      req.Participant.Gender,
			Nationality: req.Participant.Nationality,
			DateOfBirth: req.Participant.DateOfBirth,
			Notes:       req.Participant.Notes,
		}

		booking := domain.NewBooking(uuid.NewString(), req.TripID, req.UserID, participant)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:                result.ID,
		TripID:            result.TripID,
		UserID:            result.UserID,
		ParticipantID:     result.Participant.ID,
		Status:            string(result.Status.Code),
		StatusDescription: result.Status.Description,
		TransactionID:     result.TransactionID,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
