package domain

// Business validation constants
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72 // bcrypt limit
	MaxReasonLength   = 500
	MinTripCapacity   = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов бронирований, удерживающих место в поездке
var ActiveStatuses = []StatusCode{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusRefundRequested,
}
