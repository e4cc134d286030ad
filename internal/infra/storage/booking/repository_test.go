package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func testBooking() *domain.Booking {
	return domain.NewBooking("booking-1", "trip-1", "user-1", domain.Participant{
		ID:          "participant-1",
		Name:        "Siti Rahma",
		PhoneNumber: "+62-811-000-111",
		PickupPoint: "pickup-1",
	})
}

func bookingRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"b.id", "b.trip_id", "b.user_id", "b.status", "b.status_description",
		"b.status_reason", "b.transaction_id", "b.created_at", "b.updated_at",
		"p.id", "p.name", "p.phone_number", "p.pickup_point",
		"p.gender", "p.nationality", "p.date_of_birth", "p.notes",
	}).AddRow(
		"booking-1", "trip-1", "user-1", "PENDING", "Booking is pending confirmation",
		nil, nil, now, now,
		"participant-1", "Siti Rahma", "+62-811-000-111", "pickup-1",
		nil, nil, nil, nil,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	booking := testBooking()
	now := time.Now()

	mock.ExpectExec("INSERT INTO participants").
		WithArgs("participant-1", "Siti Rahma", "+62-811-000-111", "pickup-1", nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs("booking-1", "trip-1", "user-1", "participant-1",
			domain.StatusPending, "Booking is pending confirmation", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN participants p").
		WithArgs("booking-1").
		WillReturnRows(bookingRows())

	booking, err := repo.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status.Code)
	assert.Equal(t, "Siti Rahma", booking.Participant.Name)
	assert.Nil(t, booking.TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN participants p").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"b.id", "b.trip_id", "b.user_id", "b.status", "b.status_description",
			"b.status_reason", "b.transaction_id", "b.created_at", "b.updated_at",
			"p.id", "p.name", "p.phone_number", "p.pickup_point",
			"p.gender", "p.nationality", "p.date_of_birth", "p.notes",
		}))

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN participants p").
		WithArgs("user-1").
		WillReturnRows(bookingRows())

	bookings, err := repo.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "booking-1", bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMock(t)

	status := domain.BookingStatusCancelled("changed plans")
	mock.ExpectExec("UPDATE bookings").
		WithArgs(status.Code, status.Description, "changed plans", "booking-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "booking-1", status))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	status := domain.BookingStatusConfirmed()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(status.Code, status.Description, nil, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "ghost", status)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetTransactionID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE bookings").
		WithArgs("tx-1", "booking-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetTransactionID(context.Background(), "booking-1", "tx-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
