package create_trip

import "github.com/opentrip/OTS-Backend/internal/service/trips/models"

// CreateTripRequest HTTP request model
type CreateTripRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateTripRequest) ToServiceRequest(userID string) *models.CreateTripRequest {
	return &models.CreateTripRequest{
		UserID:   userID,
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}
