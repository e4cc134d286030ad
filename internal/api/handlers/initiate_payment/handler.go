package initiate_payment

import (
	"errors"
	"net/http"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/api/middleware"
	initiatePayment "github.com/opentrip/OTS-Backend/internal/usecase/initiate_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingCancelled   = "отменённое бронирование нельзя оплатить"
	msgAlreadyPaid        = "у бронирования уже есть платёжная транзакция"
	msgForbidden          = "доступ запрещен"
	msgInvalidAmount      = "сумма платежа должна быть положительной"
	msgUnknownPaymentType = "неизвестный тип оплаты"
	msgInvalidInput       = "некорректные данные платежа"
)

type Handler struct {
	useCase InitiatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitiatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/opentrip/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /transactions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req InitiatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /transactions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, initiatePayment.ErrBookingNotFound):
			h.logger.Warn("POST /transactions - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, initiatePayment.ErrAccessDenied):
			h.logger.Warn("POST /transactions - Access denied: booking_id=%s, user_id=%s", req.BookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, initiatePayment.ErrBookingCancelled):
			h.logger.Warn("POST /transactions - Booking cancelled: booking_id=%s", req.BookingID)
			handlers.RespondBadRequest(w, msgBookingCancelled)

		case errors.Is(err, initiatePayment.ErrBookingAlreadyPaid):
			h.logger.Warn("POST /transactions - Booking already paid: booking_id=%s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

		case errors.Is(err, initiatePayment.ErrInvalidAmount):
			h.logger.Warn("POST /transactions - Invalid amount: booking_id=%s, amount=%.2f", req.BookingID, req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, initiatePayment.ErrUnknownPaymentType):
			h.logger.Warn("POST /transactions - Unknown payment type: %s", req.PaymentType)
			handlers.RespondBadRequest(w, msgUnknownPaymentType)

		case errors.Is(err, initiatePayment.ErrInvalidInput):
			h.logger.Warn("POST /transactions - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /transactions - Failed to initiate payment: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /transactions - Payment initiated successfully: transaction_id=%s, booking_id=%s",
		result.ID, req.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
