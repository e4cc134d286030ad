package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrTripNotFound возвращается, когда поездка бронирования не найдена
	ErrTripNotFound = errors.New("trip not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotConfirm возвращается, когда бронирование не в статусе PENDING
	ErrCannotConfirm = errors.New("booking cannot be confirmed")

	// ErrCannotCancel возвращается, когда бронирование уже отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotRefund возвращается, когда возврат недоступен для текущего статуса
	ErrCannotRefund = errors.New("booking is not eligible for refund")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
