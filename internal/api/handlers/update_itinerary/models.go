package update_itinerary

import "github.com/opentrip/OTS-Backend/internal/service/trips/models"

// UpdateItineraryRequest HTTP request model
type UpdateItineraryRequest struct {
	Destinations []string `json:"destinations"`
	Description  string   `json:"description"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateItineraryRequest) ToServiceRequest(userID string) *models.UpdateItineraryRequest {
	return &models.UpdateItineraryRequest{
		UserID:       userID,
		Destinations: r.Destinations,
		Description:  r.Description,
	}
}
