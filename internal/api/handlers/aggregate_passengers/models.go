package aggregate_passengers

import (
	aggregatePassengers "github.com/opentrip/OTS-Backend/internal/usecase/aggregate_passengers"
)

// PassengerResponse HTTP model пассажира
type PassengerResponse struct {
	BookingID     string  `json:"bookingId"`
	Name          string  `json:"name"`
	PhoneNumber   string  `json:"phoneNumber"`
	PickupPoint   string  `json:"pickupPoint"`
	PickupAddress *string `json:"pickupAddress,omitempty"`
	BookingStatus string  `json:"bookingStatus"`
}

// PassengerListResponse HTTP response model
type PassengerListResponse struct {
	TripID     string              `json:"tripId"`
	TripName   string              `json:"tripName"`
	Passengers []PassengerResponse `json:"passengers"`
	Degraded   bool                `json:"degraded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *aggregatePassengers.Response) *PassengerListResponse {
	out := &PassengerListResponse{
		TripID:     resp.TripID,
		TripName:   resp.TripName,
		Passengers: make([]PassengerResponse, len(resp.Passengers)),
		Degraded:   resp.Degraded,
	}

	for i, p := range resp.Passengers {
		out.Passengers[i] = PassengerResponse{
			BookingID:     p.BookingID,
			Name:          p.Name,
			PhoneNumber:   p.PhoneNumber,
			PickupPoint:   p.PickupPoint,
			PickupAddress: p.PickupAddress,
			BookingStatus: p.BookingStatus,
		}
	}

	return out
}
