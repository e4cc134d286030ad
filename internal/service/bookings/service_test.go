package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentrip/OTS-Backend/internal/domain"
	bookingRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/booking"
	tripRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/trip"
	"github.com/opentrip/OTS-Backend/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking

	updatedStatuses map[string]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings:        make(map[string]*domain.Booking),
		updatedStatuses: make(map[string]domain.BookingStatus),
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByTripID(_ context.Context, tripID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.TripID == tripID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	f.updatedStatuses[id] = status
	return nil
}

type fakeTripRepo struct {
	trips map[string]*domain.Trip

	decremented []string
}

func newFakeTripRepo(trips ...*domain.Trip) *fakeTripRepo {
	repo := &fakeTripRepo{trips: make(map[string]*domain.Trip)}
	for _, trip := range trips {
		repo.trips[trip.ID] = trip
	}
	return repo
}

func (f *fakeTripRepo) GetByID(_ context.Context, id string) (*domain.Trip, error) {
	trip, ok := f.trips[id]
	if !ok {
		return nil, tripRepo.ErrTripNotFound
	}
	return trip, nil
}

func (f *fakeTripRepo) DecrementBookings(_ context.Context, tripID string) error {
	f.decremented = append(f.decremented, tripID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(id, tripID, userID string) *domain.Booking {
	return domain.NewBooking(id, tripID, userID, domain.Participant{
		ID:          id + "-participant",
		Name:        "Siti Rahma",
		PhoneNumber: "+62-811-000-111",
		PickupPoint: "pickup-1",
	})
}

func testTrip(t *testing.T, id, ownerID string) *domain.Trip {
	t.Helper()
	trip, err := domain.NewTrip(id, ownerID, "Bromo Sunrise", 10)
	require.NoError(t, err)
	return trip
}

func TestService_GetByID_Access(t *testing.T) {
	booking := testBooking("booking-1", "trip-1", "traveller")
	trip := testTrip(t, "trip-1", "organizer")

	svc := NewService(newFakeBookingRepo(booking), newFakeTripRepo(trip), fakeTxManager{}, nopLogger{})

	// Владелец бронирования видит его
	resp, err := svc.GetByID(context.Background(), "booking-1", "traveller")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)

	// Владелец поездки тоже
	_, err = svc.GetByID(context.Background(), "booking-1", "organizer")
	require.NoError(t, err)

	// Посторонний - нет
	_, err = svc.GetByID(context.Background(), "booking-1", "stranger")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "ghost", "traveller")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetTripBookings(t *testing.T) {
	trip := testTrip(t, "trip-1", "organizer")
	repo := newFakeBookingRepo(
		testBooking("booking-1", "trip-1", "traveller"),
		testBooking("booking-2", "trip-1", "other-traveller"),
	)
	svc := NewService(repo, newFakeTripRepo(trip), fakeTxManager{}, nopLogger{})

	resp, err := svc.GetTripBookings(context.Background(), "trip-1", "organizer")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	_, err = svc.GetTripBookings(context.Background(), "trip-1", "traveller")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetTripBookings(context.Background(), "ghost", "organizer")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestService_Confirm(t *testing.T) {
	booking := testBooking("booking-1", "trip-1", "traveller")
	trip := testTrip(t, "trip-1", "organizer")
	repo := newFakeBookingRepo(booking)
	svc := NewService(repo, newFakeTripRepo(trip), fakeTxManager{}, nopLogger{})

	// Подтверждать может только владелец поездки
	_, err := svc.Confirm(context.Background(), "booking-1", "traveller")
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Confirm(context.Background(), "booking-1", "organizer")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatuses["booking-1"].Code)

	// Повторное подтверждение невозможно
	_, err = svc.Confirm(context.Background(), "booking-1", "organizer")
	assert.ErrorIs(t, err, ErrCannotConfirm)
}

func TestService_Cancel_FreesCapacity(t *testing.T) {
	booking := testBooking("booking-1", "trip-1", "traveller")
	trip := testTrip(t, "trip-1", "organizer")
	trip.CurrentBookings = 3

	tripRepository := newFakeTripRepo(trip)
	svc := NewService(newFakeBookingRepo(booking), tripRepository, fakeTxManager{}, nopLogger{})

	resp, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
		UserID: "traveller",
		Reason: "changed plans",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.StatusReason)
	assert.Equal(t, "changed plans", *resp.StatusReason)

	// Место освобождено ровно один раз
	assert.Equal(t, []string{"trip-1"}, tripRepository.decremented)

	// Повторная отмена - ошибка и место не освобождается второй раз
	_, err = svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "traveller"})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Len(t, tripRepository.decremented, 1)
}

func TestService_Cancel_Access(t *testing.T) {
	booking := testBooking("booking-1", "trip-1", "traveller")
	trip := testTrip(t, "trip-1", "organizer")
	svc := NewService(newFakeBookingRepo(booking), newFakeTripRepo(trip), fakeTxManager{}, nopLogger{})

	_, err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "stranger"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Владелец поездки может отменить чужое бронирование своей поездки
	_, err = svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "organizer"})
	require.NoError(t, err)
}

func TestService_RequestRefund(t *testing.T) {
	booking := testBooking("booking-1", "trip-1", "traveller")
	require.NoError(t, booking.Confirm())
	trip := testTrip(t, "trip-1", "organizer")

	svc := NewService(newFakeBookingRepo(booking), newFakeTripRepo(trip), fakeTxManager{}, nopLogger{})

	// Возврат запрашивает только владелец бронирования
	_, err := svc.RequestRefund(context.Background(), "booking-1", &models.RequestRefundRequest{
		UserID: "organizer",
		Reason: "bad weather",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.RequestRefund(context.Background(), "booking-1", &models.RequestRefundRequest{
		UserID: "traveller",
		Reason: "bad weather",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRefundRequested), resp.Status)

	// Из PENDING возврат невозможен
	pending := testBooking("booking-2", "trip-1", "traveller")
	svc2 := NewService(newFakeBookingRepo(pending), newFakeTripRepo(trip), fakeTxManager{}, nopLogger{})
	_, err = svc2.RequestRefund(context.Background(), "booking-2", &models.RequestRefundRequest{
		UserID: "traveller",
		Reason: "x",
	})
	assert.ErrorIs(t, err, ErrCannotRefund)
}
