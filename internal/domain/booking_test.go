package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking() *Booking {
	return NewBooking("booking-1", "trip-1", "user-1", Participant{
		ID:          "participant-1",
		Name:        "Siti Rahma",
		PhoneNumber: "+62-811-000-111",
		PickupPoint: "pickup-1",
	})
}

func TestNewBooking(t *testing.T) {
	b := newTestBooking()
	assert.Equal(t, StatusPending, b.Status.Code)
	assert.Nil(t, b.TransactionID)
	assert.True(t, b.HoldsCapacity())
}

func TestBooking_Confirm(t *testing.T) {
	b := newTestBooking()
	require.NoError(t, b.Confirm())
	assert.Equal(t, StatusConfirmed, b.Status.Code)

	// Confirming twice fails
	assert.ErrorIs(t, b.Confirm(), ErrBookingNotPending)

	cancelled := newTestBooking()
	require.NoError(t, cancelled.Cancel("changed plans"))
	assert.ErrorIs(t, cancelled.Confirm(), ErrBookingNotPending)
}

func TestBooking_Cancel(t *testing.T) {
	b := newTestBooking()
	require.NoError(t, b.Cancel("changed plans"))
	assert.Equal(t, StatusCancelled, b.Status.Code)
	assert.Equal(t, "changed plans", b.Status.Reason)
	assert.True(t, b.IsCancelled())
	assert.False(t, b.HoldsCapacity())

	assert.ErrorIs(t, b.Cancel("again"), ErrBookingAlreadyCancelled)

	// Confirmed bookings can still be cancelled
	confirmed := newTestBooking()
	require.NoError(t, confirmed.Confirm())
	require.NoError(t, confirmed.Cancel(""))
	assert.Equal(t, "Booking is cancelled", confirmed.Status.Description)
}

func TestBooking_Complete(t *testing.T) {
	b := newTestBooking()
	assert.ErrorIs(t, b.Complete(), ErrBookingNotConfirmed)

	require.NoError(t, b.Confirm())
	require.NoError(t, b.Complete())
	assert.Equal(t, StatusCompleted, b.Status.Code)
}

func TestBooking_RequestRefund(t *testing.T) {
	pending := newTestBooking()
	assert.ErrorIs(t, pending.RequestRefund("bad weather"), ErrBookingNotRefundable)

	confirmed := newTestBooking()
	require.NoError(t, confirmed.Confirm())
	require.NoError(t, confirmed.RequestRefund("bad weather"))
	assert.Equal(t, StatusRefundRequested, confirmed.Status.Code)
	assert.Equal(t, "bad weather", confirmed.Status.Reason)

	completed := newTestBooking()
	require.NoError(t, completed.Confirm())
	require.NoError(t, completed.Complete())
	require.NoError(t, completed.RequestRefund("trip shortened"))
	assert.Equal(t, StatusRefundRequested, completed.Status.Code)

	cancelled := newTestBooking()
	require.NoError(t, cancelled.Cancel(""))
	assert.ErrorIs(t, cancelled.RequestRefund("x"), ErrBookingNotRefundable)
}

func TestBooking_SetTransactionID(t *testing.T) {
	b := newTestBooking()
	b.SetTransactionID("tx-1")
	require.NotNil(t, b.TransactionID)
	assert.Equal(t, "tx-1", *b.TransactionID)
}

func TestParseStatusCode(t *testing.T) {
	for _, raw := range []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED", "REFUND_REQUESTED"} {
		code, err := ParseStatusCode(raw)
		require.NoError(t, err)
		assert.Equal(t, StatusCode(raw), code)
	}

	_, err := ParseStatusCode("SHIPPED")
	assert.Error(t, err)
}
