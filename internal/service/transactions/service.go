package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/opentrip/OTS-Backend/internal/domain"
	bookingRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/booking"
	transactionRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/transaction"
	"github.com/opentrip/OTS-Backend/internal/service/transactions/models"
)

// Service сервис обработки платёжных транзакций
type Service struct {
	transactionRepo TransactionRepository
	bookingRepo     BookingRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса транзакций
func NewService(
	transactionRepo TransactionRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		bookingRepo:     bookingRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает транзакцию по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.TransactionResponse, error) {
	s.logger.Info("GetByID: fetching transaction id=%s", id)

	tx, err := s.getTransaction(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainTransaction(tx), nil
}

// List получает список всех транзакций
func (s *Service) List(ctx context.Context) (*models.TransactionListResponse, error) {
	s.logger.Info("List: fetching all transactions")

	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d transactions", len(transactions))
	return models.FromDomainTransactionList(transactions), nil
}

// Validate переводит платёж из PENDING в VALIDATED
func (s *Service) Validate(ctx context.Context, transactionID string) (*models.TransactionResponse, error) {
	s.logger.Info("Validate: validating transaction id=%s", transactionID)

	var validated *domain.Transaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		tx, err := s.getTransaction(ctx, transactionID, "Validate")
		if err != nil {
			return err
		}

		if err := tx.ValidatePayment(transactionID); err != nil {
			s.logger.Warn("Validate: transaction id=%s cannot be validated, status=%s", transactionID, tx.Status.Code)
			return fmt.Errorf("%w: %v", ErrCannotValidate, err)
		}

		if err := s.transactionRepo.UpdateStatus(ctx, transactionID, tx.Status); err != nil {
			s.logger.Error("Validate: repository error for transaction id=%s: %v", transactionID, err)
			return fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
		}

		validated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Validate: successfully validated transaction id=%s", transactionID)
	return models.FromDomainTransaction(validated), nil
}

// Confirm переводит платёж из VALIDATED в CONFIRMED
// Связанное бронирование в статусе PENDING подтверждается вместе с платежом
func (s *Service) Confirm(ctx context.Context, transactionID string) (*models.TransactionResponse, error) {
	s.logger.Info("Confirm: confirming transaction id=%s", transactionID)

	var confirmed *domain.Transaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		tx, err := s.getTransaction(ctx, transactionID, "Confirm")
		if err != nil {
			return err
		}

		if err := tx.ConfirmPayment(transactionID); err != nil {
			s.logger.Warn("Confirm: transaction id=%s cannot be confirmed, status=%s", transactionID, tx.Status.Code)
			return fmt.Errorf("%w: %v", ErrCannotConfirm, err)
		}

		if err := s.transactionRepo.UpdateStatus(ctx, transactionID, tx.Status); err != nil {
			s.logger.Error("Confirm: repository error for transaction id=%s: %v", transactionID, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if err := s.confirmLinkedBooking(ctx, tx); err != nil {
			return err
		}

		confirmed = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: successfully confirmed transaction id=%s", transactionID)
	return models.FromDomainTransaction(confirmed), nil
}

// Refund переводит платёж из CONFIRMED в REFUNDED
func (s *Service) Refund(ctx context.Context, transactionID string) (*models.TransactionResponse, error) {
	s.logger.Info("Refund: refunding transaction id=%s", transactionID)

	var refunded *domain.Transaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		tx, err := s.getTransaction(ctx, transactionID, "Refund")
		if err != nil {
			return err
		}

		if err := tx.MarkRefunded(); err != nil {
			s.logger.Warn("Refund: transaction id=%s cannot be refunded, status=%s", transactionID, tx.Status.Code)
			return fmt.Errorf("%w: %v", ErrCannotRefund, err)
		}

		if err := s.transactionRepo.UpdateStatus(ctx, transactionID, tx.Status); err != nil {
			s.logger.Error("Refund: repository error for transaction id=%s: %v", transactionID, err)
			return fmt.Errorf("%w: Refund - repository error: %v", ErrInternal, err)
		}

		refunded = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Refund: successfully refunded transaction id=%s", transactionID)
	return models.FromDomainTransaction(refunded), nil
}

// Вспомогательные методы

func (s *Service) getTransaction(ctx context.Context, id, method string) (*domain.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, transactionRepo.ErrTransactionNotFound) {
			s.logger.Warn("%s: transaction id=%s not found", method, id)
			return nil, ErrTransactionNotFound
		}
		s.logger.Error("%s: repository error for transaction id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return tx, nil
}

// confirmLinkedBooking подтверждает связанное бронирование, если оно ещё PENDING
// Бронирование в другом статусе оставляем как есть
func (s *Service) confirmLinkedBooking(ctx context.Context, tx *domain.Transaction) error {
	if tx.BookingID == nil {
		return nil
	}

	booking, err := s.bookingRepo.GetByID(ctx, *tx.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: linked booking id=%s not found for transaction id=%s", *tx.BookingID, tx.ID)
			return nil
		}
		s.logger.Error("Confirm: failed to get linked booking id=%s: %v", *tx.BookingID, err)
		return fmt.Errorf("%w: Confirm - get linked booking: %v", ErrInternal, err)
	}

	if booking.Status.Code != domain.StatusPending {
		return nil
	}

	if err := booking.Confirm(); err != nil {
		return nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status); err != nil {
		s.logger.Error("Confirm: failed to confirm linked booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: Confirm - update linked booking: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: linked booking id=%s confirmed with transaction id=%s", booking.ID, tx.ID)
	return nil
}
