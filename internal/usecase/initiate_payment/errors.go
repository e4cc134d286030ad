package initiate_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("initiate_payment: booking not found")

	// ErrBookingCancelled возвращается при попытке оплатить отменённое бронирование
	ErrBookingCancelled = errors.New("initiate_payment: booking is cancelled")

	// ErrBookingAlreadyPaid возвращается, когда у бронирования уже есть транзакция
	ErrBookingAlreadyPaid = errors.New("initiate_payment: booking already has a transaction")

	// ErrAccessDenied возвращается, когда пользователь не владеет бронированием
	ErrAccessDenied = errors.New("initiate_payment: access denied")

	// ErrInvalidAmount возвращается при неположительной сумме платежа
	ErrInvalidAmount = errors.New("initiate_payment: amount must be positive")

	// ErrUnknownPaymentType возвращается при неизвестном типе оплаты
	ErrUnknownPaymentType = errors.New("initiate_payment: unknown payment type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initiate_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_payment: internal error")
)
