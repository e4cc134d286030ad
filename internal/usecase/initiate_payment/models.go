package initiate_payment

import "time"

// Request модель запроса на инициацию платежа
type Request struct {
	UserID      string  // ID пользователя, инициирующего платёж
	BookingID   string  // ID оплачиваемого бронирования
	Amount      float64 // Сумма платежа
	PaymentType string  // Тип оплаты (CREDIT_CARD, DEBIT_CARD, BANK_TRANSFER, E_WALLET, CASH)
	Provider    string  // Платёжный провайдер (для CASH подставляется "Cash")
}

// Response модель ответа с созданной транзакцией
type Response struct {
	ID              string    // ID транзакции
	BookingID       string    // ID бронирования
	TotalAmount     float64   // Сумма платежа
	Status          string    // Статус платежа
	StatusChangedAt time.Time // Время последней смены статуса
	PaymentType     string    // Тип оплаты
	Provider        string    // Платёжный провайдер

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
