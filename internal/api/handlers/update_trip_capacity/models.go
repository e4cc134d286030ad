package update_trip_capacity

import "github.com/opentrip/OTS-Backend/internal/service/trips/models"

// UpdateCapacityRequest HTTP request model
type UpdateCapacityRequest struct {
	Capacity int `json:"capacity"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCapacityRequest) ToServiceRequest(userID string) *models.UpdateCapacityRequest {
	return &models.UpdateCapacityRequest{
		UserID:   userID,
		Capacity: r.Capacity,
	}
}
