package request_refund

import "github.com/opentrip/OTS-Backend/internal/service/bookings/models"

// RequestRefundRequest HTTP request model
type RequestRefundRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RequestRefundRequest) ToServiceRequest(userID string) *models.RequestRefundRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.RequestRefundRequest{
		UserID: userID,
		Reason: reason,
	}
}
