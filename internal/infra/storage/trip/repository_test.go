package trip

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

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO trips").
		WithArgs("trip-1", "user-1", "Bromo Sunrise", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	trip, err := domain.NewTrip("trip-1", "user-1", "Bromo Sunrise", 10)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), trip)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs("trip-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "name", "capacity", "current_bookings",
			"itinerary_destinations", "itinerary_description", "guide_id",
			"created_at", "updated_at",
		}).AddRow("trip-1", "user-1", "Bromo Sunrise", 10, 3, "{Bromo,Ijen}", "Two volcanoes", "guide-1", now, now))

	mock.ExpectQuery("SELECT (.+) FROM trip_schedules").
		WithArgs("trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"start_date", "end_date", "location"}).
			AddRow(start, end, "Bromo"))

	mock.ExpectQuery("SELECT (.+) FROM guides").
		WithArgs("guide-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "contact", "language"}).
			AddRow("guide-1", "Agus", "+62-812", "en"))

	trip, err := repo.GetByID(context.Background(), "trip-1")
	require.NoError(t, err)

	assert.Equal(t, "trip-1", trip.ID)
	assert.Equal(t, 3, trip.CurrentBookings)
	require.NotNil(t, trip.Itinerary)
	assert.Equal(t, []string{"Bromo", "Ijen"}, trip.Itinerary.Destinations)
	require.Len(t, trip.Schedules, 1)
	assert.Equal(t, "Bromo", trip.Schedules[0].Location)
	require.NotNil(t, trip.Guide)
	assert.Equal(t, "Agus", trip.Guide.Name)
	assert.Contains(t, trip.Guide.AssignedTrips(), "trip-1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "name", "capacity", "current_bookings",
			"itinerary_destinations", "itinerary_description", "guide_id",
			"created_at", "updated_at",
		}))

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementBookings(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE trips").
		WithArgs("trip-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementBookings(context.Background(), "trip-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementBookings_Full(t *testing.T) {
	repo, mock := newMock(t)

	// Guarded UPDATE не затронул строк - поездка заполнена
	mock.ExpectExec("UPDATE trips").
		WithArgs("trip-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementBookings(context.Background(), "trip-1")
	assert.ErrorIs(t, err, ErrTripFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateCapacity_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE trips").
		WithArgs(20, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCapacity(context.Background(), "ghost", 20)
	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddSchedule(t *testing.T) {
	repo, mock := newMock(t)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO trip_schedules").
		WithArgs("trip-1", start, end, "Bromo").
		WillReturnResult(sqlmock.NewResult(0, 1))

	schedule, err := domain.NewSchedule(start, end, "Bromo")
	require.NoError(t, err)

	require.NoError(t, repo.AddSchedule(context.Background(), "trip-1", schedule))
	assert.NoError(t, mock.ExpectationsWereMet())
}
