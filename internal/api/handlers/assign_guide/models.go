package assign_guide

import "github.com/opentrip/OTS-Backend/internal/service/trips/models"

// AssignGuideRequest HTTP request model
type AssignGuideRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Language string `json:"language"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AssignGuideRequest) ToServiceRequest(userID string) *models.AssignGuideRequest {
	return &models.AssignGuideRequest{
		UserID:   userID,
		Name:     r.Name,
		Contact:  r.Contact,
		Language: r.Language,
	}
}
