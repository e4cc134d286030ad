package domain

import (
	"fmt"
	"time"
)

// StatusCode represents the lifecycle state of a booking
type StatusCode string

const (
	StatusPending         StatusCode = "PENDING"
	StatusConfirmed       StatusCode = "CONFIRMED"
	StatusCancelled       StatusCode = "CANCELLED"
	StatusCompleted       StatusCode = "COMPLETED"
	StatusRefundRequested StatusCode = "REFUND_REQUESTED"
)

// BookingStatus is a status code with a human-readable description
// and an optional reason (for cancellations and refund requests)
type BookingStatus struct {
	Code        StatusCode
	Description string
	Reason      string
}

// BookingStatusPending returns the initial booking status
func BookingStatusPending() BookingStatus {
	return BookingStatus{Code: StatusPending, Description: "Booking is pending confirmation"}
}

// BookingStatusConfirmed returns the confirmed booking status
func BookingStatusConfirmed() BookingStatus {
	return BookingStatus{Code: StatusConfirmed, Description: "Booking is confirmed"}
}

// BookingStatusCancelled returns the cancelled booking status with a reason
func BookingStatusCancelled(reason string) BookingStatus {
	description := "Booking is cancelled"
	if reason != "" {
		description = fmt.Sprintf("Booking is cancelled: %s", reason)
	}
	return BookingStatus{Code: StatusCancelled, Description: description, Reason: reason}
}

// BookingStatusCompleted returns the completed booking status
func BookingStatusCompleted() BookingStatus {
	return BookingStatus{Code: StatusCompleted, Description: "Booking is completed"}
}

// BookingStatusRefundRequested returns the refund-requested booking status
func BookingStatusRefundRequested(reason string) BookingStatus {
	description := "Refund requested"
	if reason != "" {
		description = fmt.Sprintf("Refund requested: %s", reason)
	}
	return BookingStatus{Code: StatusRefundRequested, Description: description, Reason: reason}
}

// ParseStatusCode validates a raw status string
func ParseStatusCode(raw string) (StatusCode, error) {
	code := StatusCode(raw)
	switch code {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRefundRequested:
		return code, nil
	}
	return "", fmt.Errorf("invalid booking status %q", raw)
}

// Participant represents a passenger attached to a booking
type Participant struct {
	ID          string
	Name        string
	PhoneNumber string
	PickupPoint string
	Gender      *string
	Nationality *string
	DateOfBirth *time.Time
	Notes       *string
}

// Booking represents a trip booking made by a user for a participant
type Booking struct {
	ID            string
	TripID        string
	UserID        string // user who created the booking
	Participant   Participant
	Status        BookingStatus
	TransactionID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking creates a booking in the pending state
func NewBooking(id, tripID, userID string, participant Participant) *Booking {
	return &Booking{
		ID:          id,
		TripID:      tripID,
		UserID:      userID,
		Participant: participant,
		Status:      BookingStatusPending(),
	}
}

// Confirm moves the booking from pending to confirmed
func (b *Booking) Confirm() error {
	if b.Status.Code != StatusPending {
		return ErrBookingNotPending
	}
	b.Status = BookingStatusConfirmed()
	return nil
}

// Cancel moves the booking to cancelled with a reason.
// Cancelling an already cancelled booking is an error.
func (b *Booking) Cancel(reason string) error {
	if b.Status.Code == StatusCancelled {
		return ErrBookingAlreadyCancelled
	}
	b.Status = BookingStatusCancelled(reason)
	return nil
}

// Complete moves the booking from confirmed to completed
func (b *Booking) Complete() error {
	if b.Status.Code != StatusConfirmed {
		return ErrBookingNotConfirmed
	}
	b.Status = BookingStatusCompleted()
	return nil
}

// RequestRefund marks a confirmed or completed booking as awaiting refund
func (b *Booking) RequestRefund(reason string) error {
	if b.Status.Code != StatusConfirmed && b.Status.Code != StatusCompleted {
		return ErrBookingNotRefundable
	}
	b.Status = BookingStatusRefundRequested(reason)
	return nil
}

// SetTransactionID links the booking to its payment transaction
func (b *Booking) SetTransactionID(transactionID string) {
	b.TransactionID = &transactionID
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status.Code == StatusCancelled
}

// HoldsCapacity returns true while the booking occupies a spot on the trip
func (b *Booking) HoldsCapacity() bool {
	return b.Status.Code != StatusCancelled
}
