package models

import (
	"time"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

// Request модели

// CreateTripRequest запрос на создание поездки
type CreateTripRequest struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// AddScheduleRequest запрос на добавление расписания
type AddScheduleRequest struct {
	UserID    string `json:"userId"`
	StartDate string `json:"startDate"` // "2026-03-01"
	EndDate   string `json:"endDate"`   // "2026-03-05"
	Location  string `json:"location"`
}

// AssignGuideRequest запрос на назначение гида
type AssignGuideRequest struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Language string `json:"language"`
}

// UpdateCapacityRequest запрос на изменение вместимости
type UpdateCapacityRequest struct {
	UserID   string `json:"userId"`
	Capacity int    `json:"capacity"`
}

// UpdateItineraryRequest запрос на замену маршрута
type UpdateItineraryRequest struct {
	UserID       string   `json:"userId"`
	Destinations []string `json:"destinations"`
	Description  string   `json:"description"`
}

// Response модели

// ScheduleResponse расписание поездки
type ScheduleResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Location  string `json:"location"`
}

// ItineraryResponse маршрут поездки
type ItineraryResponse struct {
	Destinations []string `json:"destinations"`
	Description  string   `json:"description,omitempty"`
}

// GuideResponse гид поездки
type GuideResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Language string `json:"language"`
}

// TripResponse ответ с данными поездки
type TripResponse struct {
	ID              string             `json:"id"`
	OwnerID         string             `json:"ownerId"`
	Name            string             `json:"name"`
	Capacity        int                `json:"capacity"`
	CurrentBookings int                `json:"currentBookings"`
	AvailableSpots  int                `json:"availableSpots"`
	Schedules       []ScheduleResponse `json:"schedules"`
	Itinerary       *ItineraryResponse `json:"itinerary,omitempty"`
	Guide           *GuideResponse     `json:"guide,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// TripListResponse ответ со списком поездок
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
}

// Методы конвертации

// FromDomainTrip конвертирует domain модель в DTO
func FromDomainTrip(t *domain.Trip) *TripResponse {
	if t == nil {
		return nil
	}

	resp := &TripResponse{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		Name:            t.Name,
		Capacity:        t.Capacity,
		CurrentBookings: t.CurrentBookings,
		AvailableSpots:  t.Capacity - t.CurrentBookings,
		Schedules:       make([]ScheduleResponse, len(t.Schedules)),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}

	for i, s := range t.Schedules {
		resp.Schedules[i] = ScheduleResponse{
			StartDate: s.StartDate.Format(domain.DateFormat),
			EndDate:   s.EndDate.Format(domain.DateFormat),
			Location:  s.Location,
		}
	}

	if t.Itinerary != nil {
		resp.Itinerary = &ItineraryResponse{
			Destinations: t.Itinerary.Destinations,
			Description:  t.Itinerary.Description,
		}
	}

	if t.Guide != nil {
		resp.Guide = &GuideResponse{
			ID:       t.Guide.ID,
			Name:     t.Guide.Name,
			Contact:  t.Guide.Contact,
			Language: t.Guide.Language,
		}
	}

	return resp
}

// FromDomainTripList конвертирует список domain моделей в DTO
func FromDomainTripList(trips []*domain.Trip) *TripListResponse {
	resp := &TripListResponse{
		Trips: make([]TripResponse, 0, len(trips)),
	}

	for _, trip := range trips {
		if tripResp := FromDomainTrip(trip); tripResp != nil {
			resp.Trips = append(resp.Trips, *tripResp)
		}
	}

	return resp
}
