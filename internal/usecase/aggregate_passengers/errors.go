package aggregate_passengers

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("aggregate_passengers: trip not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("aggregate_passengers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("aggregate_passengers: internal error")
)
