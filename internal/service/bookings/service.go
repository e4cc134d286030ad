package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/opentrip/OTS-Backend/internal/domain"
	bookingRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/booking"
	tripRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/trip"
	"github.com/opentrip/OTS-Backend/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	tripRepo    TripRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		tripRepo:    tripRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование или бронирование своей поездки
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetTripBookings получает бронирования поездки
// Доступно только владельцу поездки
func (s *Service) GetTripBookings(ctx context.Context, tripID string, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetTripBookings: fetching bookings for trip=%s by user=%s", tripID, userID)

	if err := s.checkTripOwner(ctx, tripID, userID, "GetTripBookings"); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByTripID(ctx, tripID)
	if err != nil {
		s.logger.Error("GetTripBookings: repository error for trip=%s: %v", tripID, err)
		return nil, fmt.Errorf("%w: GetTripBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTripBookings: successfully fetched %d bookings for trip=%s", len(bookings), tripID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает бронирование
// Переход возможен только из статуса PENDING; доступно владельцу поездки
func (s *Service) Confirm(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s by user=%s", bookingID, userID)

	var confirmed *domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, bookingID, "Confirm")
		if err != nil {
			return err
		}

		if err := s.checkTripOwner(ctx, booking.TripID, userID, "Confirm"); err != nil {
			return err
		}

		if err := booking.Confirm(); err != nil {
			s.logger.Warn("Confirm: booking id=%s is not pending, status=%s", bookingID, booking.Status.Code)
			return ErrCannotConfirm
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status); err != nil {
			s.logger.Error("Confirm: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		confirmed = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%s", bookingID)
	return models.FromDomainBooking(confirmed), nil
}

// Cancel отменяет бронирование и освобождает место в поездке
// Пользователь может отменить своё бронирование, владелец поездки - любое её бронирование
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	var cancelled *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, bookingID, "Cancel")
		if err != nil {
			return err
		}

		if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", req.UserID, bookingID)
			return err
		}

		// Место освобождаем только если бронирование его занимало
		heldCapacity := booking.HoldsCapacity()

		if err := booking.Cancel(req.Reason); err != nil {
			s.logger.Warn("Cancel: booking id=%s is already cancelled", bookingID)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status); err != nil {
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if heldCapacity {
			if err := s.tripRepo.DecrementBookings(ctx, booking.TripID); err != nil {
				s.logger.Error("Cancel: failed to free capacity of trip=%s: %v", booking.TripID, err)
				return fmt.Errorf("%w: Cancel - free trip capacity: %v", ErrInternal, err)
			}
		}

		cancelled = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return models.FromDomainBooking(cancelled), nil
}

// RequestRefund помечает бронирование как ожидающее возврата
// Доступно только владельцу бронирования из статусов CONFIRMED и COMPLETED
func (s *Service) RequestRefund(ctx context.Context, bookingID string, req *models.RequestRefundRequest) (*models.BookingResponse, error) {
	s.logger.Info("RequestRefund: requesting refund for booking id=%s by user=%s", bookingID, req.UserID)

	var updated *domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, bookingID, "RequestRefund")
		if err != nil {
			return err
		}

		if booking.UserID != req.UserID {
			s.logger.Warn("RequestRefund: user=%s is not the owner of booking id=%s", req.UserID, bookingID)
			return ErrAccessDenied
		}

		if err := booking.RequestRefund(req.Reason); err != nil {
			s.logger.Warn("RequestRefund: booking id=%s is not refundable, status=%s", bookingID, booking.Status.Code)
			return ErrCannotRefund
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status); err != nil {
			s.logger.Error("RequestRefund: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: RequestRefund - repository error: %v", ErrInternal, err)
		}

		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("RequestRefund: successfully requested refund for booking id=%s", bookingID)
	return models.FromDomainBooking(updated), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ есть у владельца бронирования и у владельца поездки
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkTripOwner(ctx, booking.TripID, userID, "checkUserAccess"); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkTripOwner проверяет, что пользователь является владельцем поездки
func (s *Service) checkTripOwner(ctx context.Context, tripID, userID, method string) error {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			s.logger.Warn("%s: trip id=%s not found", method, tripID)
			return ErrTripNotFound
		}
		s.logger.Error("%s: failed to get trip id=%s: %v", method, tripID, err)
		return fmt.Errorf("%w: %s - failed to get trip: %v", ErrInternal, method, err)
	}

	if trip.OwnerID != userID {
		s.logger.Warn("%s: user=%s is not the owner of trip=%s", method, userID, tripID)
		return ErrAccessDenied
	}

	return nil
}
