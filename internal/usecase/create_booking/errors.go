package create_booking

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("create_booking: trip not found")

	// ErrTripFull возвращается, когда в поездке не осталось свободных мест
	ErrTripFull = errors.New("create_booking: trip is at full capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
