package list_transactions

import (
	"net/http"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
)

type Handler struct {
	service TransactionService
	logger  Logger
}

func NewHandler(service TransactionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/opentrip/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /transactions - Failed to list transactions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /transactions - Transactions listed successfully: count=%d", len(transactions.Transactions))
	handlers.RespondJSON(w, http.StatusOK, transactions)
}
