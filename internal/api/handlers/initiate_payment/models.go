package initiate_payment

import (
	"time"

	initiatePayment "github.com/opentrip/OTS-Backend/internal/usecase/initiate_payment"
)

// InitiatePaymentRequest HTTP request model
type InitiatePaymentRequest struct {
	BookingID   string  `json:"bookingId"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"paymentType"`
	Provider    string  `json:"provider"`
}

// TransactionResponse HTTP response model
type TransactionResponse struct {
	ID              string  `json:"id"`
	BookingID       string  `json:"bookingId"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	StatusChangedAt string  `json:"statusChangedAt"`
	PaymentType     string  `json:"paymentType"`
	Provider        string  `json:"provider"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InitiatePaymentRequest) ToUseCaseRequest(userID string) *initiatePayment.Request {
	return &initiatePayment.Request{
		UserID:      userID,
		BookingID:   r.BookingID,
		Amount:      r.Amount,
		PaymentType: r.PaymentType,
		Provider:    r.Provider,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initiatePayment.Response) *TransactionResponse {
	return &TransactionResponse{
		ID:              resp.ID,
		BookingID:       resp.BookingID,
		TotalAmount:     resp.TotalAmount,
		Status:          resp.Status,
		StatusChangedAt: resp.StatusChangedAt.Format(time.RFC3339),
		PaymentType:     resp.PaymentType,
		Provider:        resp.Provider,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
