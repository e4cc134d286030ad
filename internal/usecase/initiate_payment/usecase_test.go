package initiate_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentrip/OTS-Backend/internal/domain"
	bookingRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/booking"
)

type fakeTransactionRepo struct {
	created *domain.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	f.created = tx
	return tx, nil
}

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	linkedTransactionID string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) SetTransactionID(_ context.Context, _ string, transactionID string) error {
	f.linkedTransactionID = transactionID
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		UserID:      "traveller",
		BookingID:   "booking-1",
		Amount:      1500000,
		PaymentType: "E_WALLET",
		Provider:    "GoPay",
	}
}

func pendingBooking() *domain.Booking {
	return domain.NewBooking("booking-1", "trip-1", "traveller", domain.Participant{
		ID:          "participant-1",
		Name:        "Siti Rahma",
		PhoneNumber: "+62-811-000-111",
		PickupPoint: "pickup-1",
	})
}

func TestUseCase_Execute(t *testing.T) {
	transactions := &fakeTransactionRepo{}
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	uc := NewUseCase(transactions, bookings, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "booking-1", resp.BookingID)
	assert.Equal(t, 1500000.0, resp.TotalAmount)
	assert.Equal(t, string(domain.PaymentPending), resp.Status)
	assert.Equal(t, "E_WALLET", resp.PaymentType)
	assert.Equal(t, "GoPay", resp.Provider)

	// Бронирование связано с созданной транзакцией
	assert.Equal(t, resp.ID, bookings.linkedTransactionID)
	require.NotNil(t, transactions.created)
	assert.Equal(t, domain.PaymentPending, transactions.created.Status.Code)
}

func TestUseCase_Execute_CashProvider(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	uc := NewUseCase(&fakeTransactionRepo{}, bookings, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.PaymentType = "CASH"
	req.Provider = "ignored"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Cash", resp.Provider)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeTransactionRepo{}, &fakeBookingRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"missing user", func(r *Request) { r.UserID = "" }, ErrInvalidInput},
		{"missing booking", func(r *Request) { r.BookingID = "" }, ErrInvalidInput},
		{"zero amount", func(r *Request) { r.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(r *Request) { r.Amount = -100 }, ErrInvalidAmount},
		{"missing payment type", func(r *Request) { r.PaymentType = "" }, ErrInvalidInput},
		{"unknown payment type", func(r *Request) { r.PaymentType = "CRYPTO" }, ErrUnknownPaymentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(&fakeTransactionRepo{}, bookings, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_NotOwner(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	uc := NewUseCase(&fakeTransactionRepo{}, bookings, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.UserID = "stranger"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUseCase_Execute_CancelledBooking(t *testing.T) {
	booking := pendingBooking()
	require.NoError(t, booking.Cancel("changed plans"))

	bookings := &fakeBookingRepo{booking: booking}
	uc := NewUseCase(&fakeTransactionRepo{}, bookings, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestUseCase_Execute_AlreadyPaid(t *testing.T) {
	booking := pendingBooking()
	booking.SetTransactionID("tx-existing")

	bookings := &fakeBookingRepo{booking: booking}
	uc := NewUseCase(&fakeTransactionRepo{}, bookings, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingAlreadyPaid)
}
