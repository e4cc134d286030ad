package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingTransaction(t *testing.T) *Transaction {
	t.Helper()
	tx := NewTransaction("tx-1")
	method := NewPaymentMethod(PaymentTypeEWallet, "GoPay")
	require.NoError(t, tx.InitiatePayment("booking-1", 1500000, method))
	return tx
}

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction("tx-1")
	assert.Equal(t, PaymentInitiated, tx.Status.Code)
	assert.Nil(t, tx.BookingID)
	assert.Nil(t, tx.Method)
	assert.False(t, tx.IsTerminal())
}

func TestTransaction_InitiatePayment(t *testing.T) {
	tx := NewTransaction("tx-1")
	method := NewPaymentMethod(PaymentTypeCreditCard, "Visa")

	assert.ErrorIs(t, tx.InitiatePayment("booking-1", 0, method), ErrAmountNotPositive)
	assert.ErrorIs(t, tx.InitiatePayment("booking-1", -10, method), ErrAmountNotPositive)

	require.NoError(t, tx.InitiatePayment("booking-1", 1500000, method))
	assert.Equal(t, PaymentPending, tx.Status.Code)
	require.NotNil(t, tx.BookingID)
	assert.Equal(t, "booking-1", *tx.BookingID)
	assert.Equal(t, 1500000.0, tx.TotalAmount)

	// Initiating twice fails
	assert.ErrorIs(t, tx.InitiatePayment("booking-2", 100, method), ErrPaymentAlreadyInitiated)
}

func TestTransaction_Lifecycle(t *testing.T) {
	tx := newPendingTransaction(t)

	// Validation requires the matching ID
	assert.ErrorIs(t, tx.ValidatePayment("tx-other"), ErrTransactionIDMismatch)
	require.NoError(t, tx.ValidatePayment("tx-1"))
	assert.Equal(t, PaymentValidated, tx.Status.Code)
	assert.ErrorIs(t, tx.ValidatePayment("tx-1"), ErrPaymentNotPending)

	// Confirmation follows validation, same ID guard
	assert.ErrorIs(t, tx.ConfirmPayment("tx-other"), ErrTransactionIDMismatch)
	require.NoError(t, tx.ConfirmPayment("tx-1"))
	assert.Equal(t, PaymentConfirmed, tx.Status.Code)
	assert.ErrorIs(t, tx.ConfirmPayment("tx-1"), ErrPaymentNotValidated)

	// Refund only from confirmed
	require.NoError(t, tx.MarkRefunded())
	assert.Equal(t, PaymentRefunded, tx.Status.Code)
	assert.True(t, tx.IsTerminal())
	assert.ErrorIs(t, tx.MarkRefunded(), ErrPaymentNotConfirmed)
}

func TestTransaction_ConfirmSkippingValidation(t *testing.T) {
	tx := newPendingTransaction(t)
	assert.ErrorIs(t, tx.ConfirmPayment("tx-1"), ErrPaymentNotValidated)
}

func TestTransaction_RefundBeforeConfirm(t *testing.T) {
	tx := newPendingTransaction(t)
	assert.ErrorIs(t, tx.MarkRefunded(), ErrPaymentNotConfirmed)

	require.NoError(t, tx.ValidatePayment("tx-1"))
	assert.ErrorIs(t, tx.MarkRefunded(), ErrPaymentNotConfirmed)
}

func TestTransaction_MarkFailed(t *testing.T) {
	tx := newPendingTransaction(t)
	tx.MarkFailed()
	assert.Equal(t, PaymentFailed, tx.Status.Code)
	assert.True(t, tx.IsTerminal())
	assert.ErrorIs(t, tx.ValidatePayment("tx-1"), ErrPaymentNotPending)
}

func TestParsePaymentType(t *testing.T) {
	for _, raw := range []string{"CREDIT_CARD", "DEBIT_CARD", "BANK_TRANSFER", "E_WALLET", "CASH"} {
		pt, err := ParsePaymentType(raw)
		require.NoError(t, err)
		assert.Equal(t, PaymentType(raw), pt)
	}

	_, err := ParsePaymentType("CRYPTO")
	assert.ErrorIs(t, err, ErrUnknownPaymentType)
}

func TestNewPaymentMethod_CashProvider(t *testing.T) {
	method := NewPaymentMethod(PaymentTypeCash, "whatever")
	assert.Equal(t, "Cash", method.Provider)

	card := NewPaymentMethod(PaymentTypeCreditCard, "Visa")
	assert.Equal(t, "Visa", card.Provider)
}
