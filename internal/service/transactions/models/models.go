package models

import (
	"time"

	"github.com/opentrip/OTS-Backend/internal/domain"
)

// Response модели

// PaymentMethodResponse способ оплаты
type PaymentMethodResponse struct {
	Type     string `json:"type"`
	Provider string `json:"provider"`
}

// TransactionResponse ответ с данными транзакции
type TransactionResponse struct {
	ID              string                 `json:"id"`
	BookingID       *string                `json:"bookingId,omitempty"`
	TotalAmount     float64                `json:"totalAmount"`
	Status          string                 `json:"status"`
	StatusChangedAt time.Time              `json:"statusChangedAt"`
	Method          *PaymentMethodResponse `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// TransactionListResponse ответ со списком транзакций
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// Методы конвертации

// FromDomainTransaction конвертирует domain модель в DTO
func FromDomainTransaction(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	resp := &TransactionResponse{
		ID:              t.ID,
		BookingID:       t.BookingID,
		TotalAmount:     t.TotalAmount,
		Status:          string(t.Status.Code),
		StatusChangedAt: t.Status.ChangedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}

	if t.Method != nil {
		resp.Method = &PaymentMethodResponse{
			Type:     string(t.Method.Type),
			Provider: t.Method.Provider,
		}
	}

	return resp
}

// FromDomainTransactionList конвертирует список domain моделей в DTO
func FromDomainTransactionList(transactions []*domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}

	for _, tx := range transactions {
		if txResp := FromDomainTransaction(tx); txResp != nil {
			resp.Transactions = append(resp.Transactions, *txResp)
		}
	}

	return resp
}
