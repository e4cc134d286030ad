package domain

import "time"

// PaymentStatusCode represents the state of a payment transaction
type PaymentStatusCode string

const (
	PaymentInitiated PaymentStatusCode = "INITIATED"
	PaymentPending   PaymentStatusCode = "PENDING"
	PaymentValidated PaymentStatusCode = "VALIDATED"
	PaymentConfirmed PaymentStatusCode = "CONFIRMED"
	PaymentFailed    PaymentStatusCode = "FAILED"
	PaymentRefunded  PaymentStatusCode = "REFUNDED"
)

// PaymentStatus is a payment state with the moment it was entered
type PaymentStatus struct {
	Code      PaymentStatusCode
	ChangedAt time.Time
}

func newPaymentStatus(code PaymentStatusCode) PaymentStatus {
	return PaymentStatus{Code: code, ChangedAt: time.Now()}
}

// PaymentType enumerates the supported payment instruments
type PaymentType string

const (
	PaymentTypeCreditCard   PaymentType = "CREDIT_CARD"
	PaymentTypeDebitCard    PaymentType = "DEBIT_CARD"
	PaymentTypeBankTransfer PaymentType = "BANK_TRANSFER"
	PaymentTypeEWallet      PaymentType = "E_WALLET"
	PaymentTypeCash         PaymentType = "CASH"
)

// ParsePaymentType validates a raw payment type string
func ParsePaymentType(raw string) (PaymentType, error) {
	t := PaymentType(raw)
	switch t {
	case PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypeBankTransfer, PaymentTypeEWallet, PaymentTypeCash:
		return t, nil
	}
	return "", ErrUnknownPaymentType
}

// PaymentMethod is a payment type with its provider
type PaymentMethod struct {
	Type     PaymentType
	Provider string
}

// NewPaymentMethod creates a payment method; cash always uses the "Cash" provider
func NewPaymentMethod(paymentType PaymentType, provider string) PaymentMethod {
	if paymentType == PaymentTypeCash {
		provider = "Cash"
	}
	return PaymentMethod{Type: paymentType, Provider: provider}
}

// Transaction represents a payment transaction for a booking.
// States move strictly INITIATED -> PENDING -> VALIDATED -> CONFIRMED,
// with FAILED and REFUNDED as terminal states.
type Transaction struct {
	ID          string
	BookingID   *string
	TotalAmount float64
	Status      PaymentStatus
	Method      *PaymentMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a transaction in the initiated state
func NewTransaction(id string) *Transaction {
	return &Transaction{
		ID:     id,
		Status: newPaymentStatus(PaymentInitiated),
	}
}

// InitiatePayment attaches the booking, amount and method, moving to pending.
// Allowed exactly once, from the initiated state.
func (t *Transaction) InitiatePayment(bookingID string, amount float64, method PaymentMethod) error {
	if t.Status.Code != PaymentInitiated {
		return ErrPaymentAlreadyInitiated
	}
	if amount <= 0 {
		return ErrAmountNotPositive
	}

	t.BookingID = &bookingID
	t.TotalAmount = amount
	t.Method = &method
	t.Status = newPaymentStatus(PaymentPending)
	return nil
}

// ValidatePayment moves a pending transaction to validated.
// The caller-supplied ID must match, guarding against mixed-up transactions.
func (t *Transaction) ValidatePayment(transactionID string) error {
	if t.ID != transactionID {
		return ErrTransactionIDMismatch
	}
	if t.Status.Code != PaymentPending {
		return ErrPaymentNotPending
	}
	t.Status = newPaymentStatus(PaymentValidated)
	return nil
}

// ConfirmPayment moves a validated transaction to confirmed
func (t *Transaction) ConfirmPayment(transactionID string) error {
	if t.ID != transactionID {
		return ErrTransactionIDMismatch
	}
	if t.Status.Code != PaymentValidated {
		return ErrPaymentNotValidated
	}
	t.Status = newPaymentStatus(PaymentConfirmed)
	return nil
}

// MarkFailed moves the transaction to the failed state
func (t *Transaction) MarkFailed() {
	t.Status = newPaymentStatus(PaymentFailed)
}

// MarkRefunded moves a confirmed transaction to refunded
func (t *Transaction) MarkRefunded() error {
	if t.Status.Code != PaymentConfirmed {
		return ErrPaymentNotConfirmed
	}
	t.Status = newPaymentStatus(PaymentRefunded)
	return nil
}

// IsTerminal returns true for states with no outgoing transitions
func (t *Transaction) IsTerminal() bool {
	return t.Status.Code == PaymentFailed || t.Status.Code == PaymentRefunded
}
