package create_booking

import (
	"time"

	"github.com/opentrip/OTS-Backend/internal/domain"
	createBooking "github.com/opentrip/OTS-Backend/internal/usecase/create_booking"
)

// ParticipantRequest HTTP model участника
type ParticipantRequest struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	PickupPoint string  `json:"pickupPoint"`
	Gender      *string `json:"gender,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"` // "1990-05-21"
	Notes       *string `json:"notes,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TripID      string             `json:"tripId"`
	Participant ParticipantRequest `json:"participant"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                string  `json:"id"`
	TripID            string  `json:"tripId"`
	UserID            string  `json:"userId"`
	ParticipantID     string  `json:"participantId"`
	Status            string  `json:"status"`
	StatusDescription string  `json:"statusDescription"`
	TransactionID     *string `json:"transactionId,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	var dateOfBirth *time.Time
	if r.Participant.DateOfBirth != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.Participant.DateOfBirth)
		if err != nil {
			return nil, err
		}
		dateOfBirth = &parsed
	}

	return &createBooking.Request{
		UserID: userID,
		TripID: r.TripID,
		Participant: createBooking.ParticipantData{
			Name:        r.Participant.Name,
			PhoneNumber: r.Participant.PhoneNumber,
			PickupPoint: r.Participant.PickupPoint,
			Gender:      r.Participant.Gender,
			Nationality: r.Participant.Nationality,
			DateOfBirth: dateOfBirth,
			Notes:       r.Participant.Notes,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		TripID:            resp.TripID,
		UserID:            resp.UserID,
		ParticipantID:     resp.ParticipantID,
		Status:            resp.Status,
		StatusDescription: resp.StatusDescription,
		TransactionID:     resp.TransactionID,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
