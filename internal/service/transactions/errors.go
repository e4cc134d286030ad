package transactions

import "errors"

var (
	// ErrTransactionNotFound возвращается, когда транзакция не найдена
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCannotValidate возвращается, когда платёж не в статусе PENDING
	ErrCannotValidate = errors.New("payment cannot be validated")

	// ErrCannotConfirm возвращается, когда платёж не в статусе VALIDATED
	ErrCannotConfirm = errors.New("payment cannot be confirmed")

	// ErrCannotRefund возвращается, когда платёж не в статусе CONFIRMED
	ErrCannotRefund = errors.New("payment cannot be refunded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
