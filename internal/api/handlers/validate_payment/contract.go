package validate_payment

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/transactions/models"
)

type TransactionService interface {
	Validate(ctx context.Context, transactionID string) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
