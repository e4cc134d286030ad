package trip

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("trip.repository: trip not found")

	// ErrTripFull возвращается, когда в поездке не осталось свободных мест
	ErrTripFull = errors.New("trip.repository: trip is at full capacity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("trip.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("trip.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("trip.repository: failed to scan row")
)
