package aggregate_passengers

// Request модель запроса на агрегацию пассажиров поездки
type Request struct {
	TripID string // ID поездки
}

// Passenger пассажир поездки с разрешённой точкой посадки
type Passenger struct {
	BookingID     string  // ID бронирования
	Name          string  // Имя пассажира
	PhoneNumber   string  // Контактный телефон
	PickupPoint   string  // Идентификатор точки посадки
	PickupAddress *string // Адрес точки посадки из Travel Planner (nil при деградации)
	BookingStatus string  // Статус бронирования
}

// Response модель ответа со списком пассажиров
type Response struct {
	TripID     string      // ID поездки
	TripName   string      // Название поездки
	Passengers []Passenger // Пассажиры активных бронирований
	Degraded   bool        // true, когда Travel Planner был недоступен
}
