package domain

import "time"

// guideAssignment holds the date interval a guide is occupied by a trip
type guideAssignment struct {
	StartDate time.Time
	EndDate   time.Time
}

// Guide represents a trip guide and the schedules they are committed to
type Guide struct {
	ID       string
	Name     string
	Contact  string
	Language string

	assignedTrips []string
	schedules     map[string]guideAssignment // trip ID -> occupied interval
}

// NewGuide creates a guide with no assignments
func NewGuide(id, name, contact, language string) *Guide {
	return &Guide{
		ID:        id,
		Name:      name,
		Contact:   contact,
		Language:  language,
		schedules: make(map[string]guideAssignment),
	}
}

// AssignToTrip records the trip in the guide's assignment list
func (g *Guide) AssignToTrip(tripID string) {
	for _, id := range g.assignedTrips {
		if id == tripID {
			return
		}
	}
	g.assignedTrips = append(g.assignedTrips, tripID)
}

// UnassignFromTrip removes the trip and its schedule from the guide
func (g *Guide) UnassignFromTrip(tripID string) {
	for i, id := range g.assignedTrips {
		if id == tripID {
			g.assignedTrips = append(g.assignedTrips[:i], g.assignedTrips[i+1:]...)
			break
		}
	}
	delete(g.schedules, tripID)
}

// SetTripSchedule records the interval the guide is occupied by the trip
func (g *Guide) SetTripSchedule(tripID string, startDate, endDate time.Time) {
	if g.schedules == nil {
		g.schedules = make(map[string]guideAssignment)
	}
	g.schedules[tripID] = guideAssignment{StartDate: startDate, EndDate: endDate}
}

// IsAvailable returns true if the interval does not intersect any committed schedule
func (g *Guide) IsAvailable(startDate, endDate time.Time) bool {
	for _, a := range g.schedules {
		if !(endDate.Before(a.StartDate) || startDate.After(a.EndDate)) {
			return false
		}
	}
	return true
}

// AssignedTrips returns the IDs of trips the guide is assigned to
func (g *Guide) AssignedTrips() []string {
	out := make([]string, len(g.assignedTrips))
	copy(out, g.assignedTrips)
	return out
}
