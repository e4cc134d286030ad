package models

import (
	"time"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID string `json:"userId"`
	Reason string `json:"reason"`
}

// RequestRefundRequest запрос на возврат средств по бронированию
type RequestRefundRequest struct {
	UserID string `json:"userId"`
	Reason string `json:"reason"`
}

// Response модели

// ParticipantResponse данные участника поездки
type ParticipantResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	PickupPoint string  `json:"pickupPoint"`
	Gender      *string `json:"gender,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"` // "1990-05-21"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                string              `json:"id"`
	TripID            string              `json:"tripId"`
	UserID            string              `json:"userId"`
	Participant       ParticipantResponse `json:"participant"`
	Status            string              `json:"status"`
	StatusDescription string              `json:"statusDescription"`
	StatusReason      *string             `json:"statusReason,omitempty"`
	TransactionID     *string             `json:"transactionId,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:     b.ID,
		TripID: b.TripID,
		UserID: b.UserID,
		Participant: ParticipantResponse{
			ID:          b.Participant.ID,
			Name:        b.Participant.Name,
			PhoneNumber: b.Participant.PhoneNumber,
			PickupPoint: b.Participant.PickupPoint,
			Gender:      b.Participant.Gender,
			Nationality: b.Participant.Nationality,
			Notes:       b.Participant.Notes,
		},
		Status:            string(b.Status.Code),
		StatusDescription: b.Status.Description,
		TransactionID:     b.TransactionID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if b.Status.Reason != "" {
		reason := b.Status.Reason
		resp.StatusReason = &reason
	}

	if b.Participant.DateOfBirth != nil {
		dob := b.Participant.DateOfBirth.Format(domain.DateFormat)
		resp.Participant.DateOfBirth = &dob
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
