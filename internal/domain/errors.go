package domain

import "errors"

// Trip errors
var (
	ErrCapacityNotPositive   = errors.New("capacity must be greater than zero")
	ErrCapacityBelowBookings = errors.New("cannot reduce capacity below current bookings")
	ErrTripFull              = errors.New("trip is at full capacity")
	ErrScheduleOverlap       = errors.New("schedule overlaps with an existing schedule")
	ErrInvalidSchedule       = errors.New("end date must not be before start date")
	ErrEmptyLocation         = errors.New("schedule location cannot be empty")
	ErrGuideAlreadyAssigned  = errors.New("trip already has an assigned guide")
	ErrGuideNotAvailable     = errors.New("guide is not available for trip schedule")
	ErrEmptyItinerary        = errors.New("destination list cannot be empty")
)

// Booking errors
var (
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingNotPending       = errors.New("only pending bookings can be confirmed")
	ErrBookingNotConfirmed     = errors.New("only confirmed bookings can be completed")
	ErrBookingNotRefundable    = errors.New("only confirmed or completed bookings can request refund")
)

// Transaction errors
var (
	ErrPaymentAlreadyInitiated = errors.New("transaction already initiated")
	ErrAmountNotPositive       = errors.New("amount must be greater than zero")
	ErrTransactionIDMismatch   = errors.New("transaction ID mismatch")
	ErrPaymentNotPending       = errors.New("only pending transactions can be validated")
	ErrPaymentNotValidated     = errors.New("only validated transactions can be confirmed")
	ErrPaymentNotConfirmed     = errors.New("only confirmed transactions can be refunded")
	ErrUnknownPaymentType      = errors.New("unknown payment type")
)
