package plannerservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("plannerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("plannerservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что Travel Planner недоступен и точки посадки не будут подставлены
	ErrServiceDegraded = errors.New("plannerservice unavailable: graceful degradation applied")
)
