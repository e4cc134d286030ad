package get_transaction

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/transactions/models"
)

type TransactionService interface {
	GetByID(ctx context.Context, id string) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
