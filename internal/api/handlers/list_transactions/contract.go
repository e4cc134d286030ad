package list_transactions

import (
	"context"

	"github.com/opentrip/OTS-Backend/internal/service/transactions/models"
)

type TransactionService interface {
	List(ctx context.Context) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
