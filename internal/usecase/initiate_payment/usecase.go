package initiate_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/opentrip/OTS-Backend/internal/domain"
	bookingRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/booking"
)

// UseCase use case для инициации платежа по бронированию
type UseCase struct {
	transactionRepo TransactionRepository
	bookingRepo     BookingRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	transactionRepo TransactionRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		transactionRepo: transactionRepo,
		bookingRepo:     bookingRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case инициации платежа
// Создаёт транзакцию в статусе PENDING и связывает её с бронированием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiatePayment: user=%s, booking=%s, amount=%.2f, type=%s",
		req.UserID, req.BookingID, req.Amount, req.PaymentType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InitiatePayment: validation failed: %v", err)
		return nil, err
	}

	paymentType, err := domain.ParsePaymentType(req.PaymentType)
	if err != nil {
		uc.logger.Warn("InitiatePayment: unknown payment type=%s", req.PaymentType)
		return nil, ErrUnknownPaymentType
	}
	method := domain.NewPaymentMethod(paymentType, req.Provider)

	var result *domain.Transaction

	// 2. Создаём транзакцию и связываем с бронированием атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("InitiatePayment: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("InitiatePayment: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Платить может только владелец бронирования
		if booking.UserID != req.UserID {
			uc.logger.Warn("InitiatePayment: user=%s is not the owner of booking id=%s", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Отменённое бронирование оплатить нельзя
		if booking.IsCancelled() {
			uc.logger.Warn("InitiatePayment: booking id=%s is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		// 2.4. Повторная оплата не допускается
		if booking.TransactionID != nil {
			uc.logger.Warn("InitiatePayment: booking id=%s already linked to transaction id=%s",
				req.BookingID, *booking.TransactionID)
			return ErrBookingAlreadyPaid
		}

		// 2.5. Доменный переход INITIATED -> PENDING
		tx := domain.NewTransaction(uuid.NewString())
		if err := tx.InitiatePayment(req.BookingID, req.Amount, method); err != nil {
			if errors.Is(err, domain.ErrAmountNotPositive) {
				return ErrInvalidAmount
			}
			uc.logger.Error("InitiatePayment: domain transition failed for booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 2.6. Сохраняем транзакцию
		created, err := uc.transactionRepo.Create(txCtx, tx)
		if err != nil {
			uc.logger.Error("InitiatePayment: failed to create transaction: %v", err)
			return fmt.Errorf("%w: failed to create transaction: %v", ErrInternal, err)
		}

		// 2.7. Связываем бронирование с транзакцией
		if err := uc.bookingRepo.SetTransactionID(txCtx, req.BookingID, created.ID); err != nil {
			uc.logger.Error("InitiatePayment: failed to link booking id=%s to transaction id=%s: %v",
				req.BookingID, created.ID, err)
			return fmt.Errorf("%w: failed to link booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("InitiatePayment: successfully created transaction id=%s for booking id=%s",
		result.ID, req.BookingID)

	return &Response{
		ID:              result.ID,
		BookingID:       req.BookingID,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status.Code),
		StatusChangedAt: result.Status.ChangedAt,
		PaymentType:     string(result.Method.Type),
		Provider:        result.Method.Provider,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if req.Amount <= 0 {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(req.PaymentType) == "" {
		return fmt.Errorf("%w: paymentType is required", ErrInvalidInput)
	}

	return nil
}
