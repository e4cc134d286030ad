package domain

import "time"

// Schedule represents a date interval at a location within a trip
type Schedule struct {
	StartDate time.Time
	EndDate   time.Time
	Location  string
}

// NewSchedule creates a schedule, validating the date interval and location
func NewSchedule(startDate, endDate time.Time, location string) (Schedule, error) {
	if location == "" {
		return Schedule{}, ErrEmptyLocation
	}
	if endDate.Before(startDate) {
		return Schedule{}, ErrInvalidSchedule
	}
	return Schedule{
		StartDate: startDate,
		EndDate:   endDate,
		Location:  location,
	}, nil
}

// DurationDays returns the schedule length in days, both endpoints inclusive
func (s Schedule) DurationDays() int {
	return int(s.EndDate.Sub(s.StartDate).Hours()/24) + 1
}

// OverlapsWith returns true if the two date intervals intersect.
// Intervals are inclusive on both ends: touching boundaries count as overlap.
func (s Schedule) OverlapsWith(other Schedule) bool {
	return !(s.EndDate.Before(other.StartDate) || s.StartDate.After(other.EndDate))
}

// Itinerary represents the planned destinations of a trip
type Itinerary struct {
	Destinations []string
	Description  string
}

// NewItinerary creates an itinerary with a non-empty destination list
func NewItinerary(destinations []string, description string) (*Itinerary, error) {
	if len(destinations) == 0 {
		return nil, ErrEmptyItinerary
	}
	copied := make([]string, len(destinations))
	copy(copied, destinations)
	return &Itinerary{
		Destinations: copied,
		Description:  description,
	}, nil
}

// Trip represents a bookable trip in the catalog.
// The aggregate enforces capacity limits, schedule overlap and guide assignment rules.
type Trip struct {
	ID              string
	OwnerID         string // user who created the trip
	Name            string
	Capacity        int
	CurrentBookings int
	Schedules       []Schedule
	Itinerary       *Itinerary
	Guide           *Guide

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTrip creates a trip with a positive capacity
func NewTrip(id, ownerID, name string, capacity int) (*Trip, error) {
	if capacity <= 0 {
		return nil, ErrCapacityNotPositive
	}
	return &Trip{
		ID:       id,
		OwnerID:  ownerID,
		Name:     name,
		Capacity: capacity,
	}, nil
}

// AddSchedule appends a schedule after checking it does not overlap existing ones
func (t *Trip) AddSchedule(startDate, endDate time.Time, location string) error {
	schedule, err := NewSchedule(startDate, endDate, location)
	if err != nil {
		return err
	}

	for _, existing := range t.Schedules {
		if schedule.OverlapsWith(existing) {
			return ErrScheduleOverlap
		}
	}

	t.Schedules = append(t.Schedules, schedule)
	return nil
}

// AssignGuide assigns a guide to the trip.
// The trip must not already have a guide, and the guide must be free
// for every schedule of this trip.
func (t *Trip) AssignGuide(guide *Guide) error {
	if t.Guide != nil {
		return ErrGuideAlreadyAssigned
	}

	for _, schedule := range t.Schedules {
		if !guide.IsAvailable(schedule.StartDate, schedule.EndDate) {
			return ErrGuideNotAvailable
		}
	}

	t.Guide = guide
	guide.AssignToTrip(t.ID)
	for _, schedule := range t.Schedules {
		guide.SetTripSchedule(t.ID, schedule.StartDate, schedule.EndDate)
	}

	return nil
}

// UpdateCapacity changes the trip capacity.
// Capacity stays positive and never drops below the bookings already made.
func (t *Trip) UpdateCapacity(newCapacity int) error {
	if newCapacity <= 0 {
		return ErrCapacityNotPositive
	}
	if newCapacity < t.CurrentBookings {
		return ErrCapacityBelowBookings
	}
	t.Capacity = newCapacity
	return nil
}

// UpdateItinerary replaces the trip itinerary
func (t *Trip) UpdateItinerary(destinations []string, description string) error {
	itinerary, err := NewItinerary(destinations, description)
	if err != nil {
		return err
	}
	t.Itinerary = itinerary
	return nil
}

// IsAvailableForBooking returns true if the trip still has free spots
func (t *Trip) IsAvailableForBooking() bool {
	return t.CurrentBookings < t.Capacity
}

// IncrementBookings reserves one spot, failing when the trip is full
func (t *Trip) IncrementBookings() error {
	if !t.IsAvailableForBooking() {
		return ErrTripFull
	}
	t.CurrentBookings++
	return nil
}

// DecrementBookings frees one spot, never going below zero
func (t *Trip) DecrementBookings() {
	if t.CurrentBookings > 0 {
		t.CurrentBookings--
	}
}
