package plannerservice

// PickupPoint точка посадки из Travel Planner
type PickupPoint struct {
	ID       string `json:"trip_pickup_id"`
	Location string `json:"lokasi_jemput"`
}

// ErrorResponse модель ошибки от Travel Planner
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
