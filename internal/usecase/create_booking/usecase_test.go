package create_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentrip/OTS-Backend/internal/domain"
	tripRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/trip"
)

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = booking
	return booking, nil
}

type fakeTripRepo struct {
	trip         *domain.Trip
	getErr       error
	incrementErr error

	incremented int
}

func (f *fakeTripRepo) GetByID(_ context.Context, _ string) (*domain.Trip, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.trip, nil
}

func (f *fakeTripRepo) IncrementBookings(_ context.Context, _ string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incremented++
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		UserID: "user-1",
		TripID: "trip-1",
		Participant: ParticipantData{
			Name:        "Siti Rahma",
			PhoneNumber: "+62-811-000-111",
			PickupPoint: "pickup-1",
		},
	}
}

func availableTrip(t *testing.T) *domain.Trip {
	t.Helper()
	trip, err := domain.NewTrip("trip-1", "organizer", "Bromo Sunrise", 2)
	require.NoError(t, err)
	return trip
}

func TestUseCase_Execute(t *testing.T) {
	bookings := &fakeBookingRepo{}
	trips := &fakeTripRepo{trip: availableTrip(t)}
	uc := NewUseCase(bookings, trips, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "trip-1", resp.TripID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Nil(t, resp.TransactionID)

	assert.Equal(t, 1, trips.incremented)
	require.NotNil(t, bookings.created)
	assert.Equal(t, "Siti Rahma", bookings.created.Participant.Name)
	assert.NotEmpty(t, bookings.created.Participant.ID)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeTripRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing user", func(r *Request) { r.UserID = "" }},
		{"missing trip", func(r *Request) { r.TripID = "" }},
		{"missing participant name", func(r *Request) { r.Participant.Name = "" }},
		{"missing phone number", func(r *Request) { r.Participant.PhoneNumber = "" }},
		{"missing pickup point", func(r *Request) { r.Participant.PickupPoint = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_TripNotFound(t *testing.T) {
	trips := &fakeTripRepo{getErr: tripRepo.ErrTripNotFound}
	uc := NewUseCase(&fakeBookingRepo{}, trips, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestUseCase_Execute_TripFull(t *testing.T) {
	trip := availableTrip(t)
	trip.CurrentBookings = trip.Capacity

	trips := &fakeTripRepo{trip: trip}
	bookings := &fakeBookingRepo{}
	uc := NewUseCase(bookings, trips, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTripFull)
	assert.Zero(t, trips.incremented)
	assert.Nil(t, bookings.created)
}

func TestUseCase_Execute_ConcurrentFill(t *testing.T) {
	// Проверка прошла, но guarded UPDATE сообщил, что место уже занято
	trips := &fakeTripRepo{trip: availableTrip(t), incrementErr: tripRepo.ErrTripFull}
	bookings := &fakeBookingRepo{}
	uc := NewUseCase(bookings, trips, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTripFull)
	assert.Nil(t, bookings.created)
}
