package create_booking

import "time"

// ParticipantData данные участника поездки
type ParticipantData struct {
	Name        string     // Имя участника
	PhoneNumber string     // Контактный телефон
	PickupPoint string     // Точка посадки
	Gender      *string    // Пол (опционально)
	Nationality *string    // Гражданство (опционально)
	DateOfBirth *time.Time // Дата рождения (опционально)
	Notes       *string    // Заметки (опционально)
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID      string          // ID пользователя, создающего бронирование
	TripID      string          // ID поездки
	Participant ParticipantData // Данные участника
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                string  // ID созданного бронирования
	TripID            string  // ID поездки
	UserID            string  // ID пользователя
	ParticipantID     string  // ID участника
	Status            string  // Статус бронирования
	StatusDescription string  // Описание статуса
	TransactionID     *string // ID транзакции (пока не назначена)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
