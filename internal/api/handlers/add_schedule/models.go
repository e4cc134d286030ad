package add_schedule

import "github.com/opentrip/OTS-Backend/internal/service/trips/models"

// AddScheduleRequest HTTP request model
type AddScheduleRequest struct {
	StartDate string `json:"startDate"` // "2026-03-01"
	EndDate   string `json:"endDate"`   // "2026-03-05"
	Location  string `json:"location"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AddScheduleRequest) ToServiceRequest(userID string) *models.AddScheduleRequest {
	return &models.AddScheduleRequest{
		UserID:    userID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Location:  r.Location,
	}
}
