package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewTrip(t *testing.T) {
	trip, err := NewTrip("trip-1", "user-1", "Bromo Sunrise", 10)
	require.NoError(t, err)
	assert.Equal(t, "trip-1", trip.ID)
	assert.Equal(t, "user-1", trip.OwnerID)
	assert.Equal(t, 10, trip.Capacity)
	assert.Equal(t, 0, trip.CurrentBookings)

	_, err = NewTrip("trip-2", "user-1", "Empty", 0)
	assert.ErrorIs(t, err, ErrCapacityNotPositive)

	_, err = NewTrip("trip-3", "user-1", "Negative", -5)
	assert.ErrorIs(t, err, ErrCapacityNotPositive)
}

func TestTrip_AddSchedule(t *testing.T) {
	trip, err := NewTrip("trip-1", "user-1", "Bromo Sunrise", 10)
	require.NoError(t, err)

	require.NoError(t, trip.AddSchedule(date("2026-06-01"), date("2026-06-05"), "Bromo"))
	require.Len(t, trip.Schedules, 1)

	tests := []struct {
		name     string
		start    string
		end      string
		location string
		wantErr  error
	}{
		{
			name:     "overlap inside existing",
			start:    "2026-06-02",
			end:      "2026-06-04",
			location: "Ijen",
			wantErr:  ErrScheduleOverlap,
		},
		{
			name:     "touching end boundary overlaps",
			start:    "2026-06-05",
			end:      "2026-06-07",
			location: "Ijen",
			wantErr:  ErrScheduleOverlap,
		},
		{
			name:     "touching start boundary overlaps",
			start:    "2026-05-30",
			end:      "2026-06-01",
			location: "Ijen",
			wantErr:  ErrScheduleOverlap,
		},
		{
			name:     "end before start",
			start:    "2026-06-10",
			end:      "2026-06-08",
			location: "Ijen",
			wantErr:  ErrInvalidSchedule,
		},
		{
			name:     "empty location",
			start:    "2026-06-10",
			end:      "2026-06-12",
			location: "",
			wantErr:  ErrEmptyLocation,
		},
		{
			name:     "disjoint interval is accepted",
			start:    "2026-06-06",
			end:      "2026-06-08",
			location: "Ijen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := trip.AddSchedule(date(tt.start), date(tt.end), tt.location)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.Len(t, trip.Schedules, 2)
}

func TestSchedule_DurationDays(t *testing.T) {
	s, err := NewSchedule(date("2026-06-01"), date("2026-06-05"), "Bromo")
	require.NoError(t, err)
	assert.Equal(t, 5, s.DurationDays())

	oneDay, err := NewSchedule(date("2026-06-01"), date("2026-06-01"), "Bromo")
	require.NoError(t, err)
	assert.Equal(t, 1, oneDay.DurationDays())
}

func TestTrip_AssignGuide(t *testing.T) {
	trip, err := NewTrip("trip-1", "user-1", "Bromo Sunrise", 10)
	require.NoError(t, err)
	require.NoError(t, trip.AddSchedule(date("2026-06-01"), date("2026-06-05"), "Bromo"))

	guide := NewGuide("guide-1", "Agus", "+62-812", "en")
	require.NoError(t, trip.AssignGuide(guide))
	assert.Equal(t, guide, trip.Guide)
	assert.Contains(t, guide.AssignedTrips(), "trip-1")

	// Second guide on the same trip is rejected
	other := NewGuide("guide-2", "Budi", "+62-813", "id")
	assert.ErrorIs(t, trip.AssignGuide(other), ErrGuideAlreadyAssigned)

	// The same guide is busy for an overlapping trip
	overlapping, err := NewTrip("trip-2", "user-1", "Ijen Crater", 8)
	require.NoError(t, err)
	require.NoError(t, overlapping.AddSchedule(date("2026-06-03"), date("2026-06-07"), "Ijen"))
	assert.ErrorIs(t, overlapping.AssignGuide(guide), ErrGuideNotAvailable)

	// But free for a disjoint one
	disjoint, err := NewTrip("trip-3", "user-1", "Tumpak Sewu", 8)
	require.NoError(t, err)
	require.NoError(t, disjoint.AddSchedule(date("2026-07-01"), date("2026-07-03"), "Tumpak Sewu"))
	assert.NoError(t, disjoint.AssignGuide(guide))
}

func TestTrip_UpdateCapacity(t *testing.T) {
	trip, err := NewTrip("trip-1", "user-1", "Bromo Sunrise", 10)
	require.NoError(t, err)
	trip.CurrentBookings = 4

	assert.ErrorIs(t, trip.UpdateCapacity(0), ErrCapacityNotPositive)
	assert.ErrorIs(t, trip.UpdateCapacity(3), ErrCapacityBelowBookings)

	require.NoError(t, trip.UpdateCapacity(4))
	assert.Equal(t, 4, trip.Capacity)

	require.NoError(t, trip.UpdateCapacity(20))
	assert.Equal(t, 20, trip.Capacity)
}

func TestTrip_UpdateItinerary(t *testing.T) {
	trip, err := NewTrip("trip-1", "user-1", "Bromo Sunrise", 10)
	require.NoError(t, err)

	assert.ErrorIs(t, trip.UpdateItinerary(nil, "empty"), ErrEmptyItinerary)

	require.NoError(t, trip.UpdateItinerary([]string{"Bromo", "Ijen"}, "Two volcanoes"))
	require.NotNil(t, trip.Itinerary)
	assert.Equal(t, []string{"Bromo", "Ijen"}, trip.Itinerary.Destinations)
	assert.Equal(t, "Two volcanoes", trip.Itinerary.Description)
}

func TestTrip_BookingCounters(t *testing.T) {
	trip, err := NewTrip("trip-1", "user-1", "Bromo Sunrise", 2)
	require.NoError(t, err)

	assert.True(t, trip.IsAvailableForBooking())
	require.NoError(t, trip.IncrementBookings())
	require.NoError(t, trip.IncrementBookings())

	assert.False(t, trip.IsAvailableForBooking())
	assert.ErrorIs(t, trip.IncrementBookings(), ErrTripFull)

	trip.DecrementBookings()
	assert.True(t, trip.IsAvailableForBooking())
	assert.Equal(t, 1, trip.CurrentBookings)

	trip.DecrementBookings()
	trip.DecrementBookings() // never goes below zero
	assert.Equal(t, 0, trip.CurrentBookings)
}
