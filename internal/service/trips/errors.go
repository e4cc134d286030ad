package trips

import "errors"

var (
	// ErrTripNotFound возвращается, когда поездка не найдена
	ErrTripNotFound = errors.New("trip not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrScheduleConflict возвращается при пересечении расписаний поездки
	ErrScheduleConflict = errors.New("schedule overlaps an existing one")

	// ErrGuideConflict возвращается, когда гид уже назначен или занят
	ErrGuideConflict = errors.New("guide cannot be assigned")

	// ErrCapacityConflict возвращается при недопустимом изменении вместимости
	ErrCapacityConflict = errors.New("capacity cannot be updated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
