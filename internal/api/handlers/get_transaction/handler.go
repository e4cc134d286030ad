package get_transaction

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/service/transactions"
)

const msgNotFound = "транзакция не найдена"

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

// Handle GET /api/opentrip/transactions/{transactionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	transactionID := vars["transactionId"]

	transaction, err := h.service.GetByID(r.Context(), transactionID)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrTransactionNotFound):
			h.logger.Warn("GET /transactions/{id} - Transaction not found: transaction_id=%s", transactionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /transactions/{id} - Failed to get transaction: transaction_id=%s, error=%v",
				transactionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /transactions/{id} - Transaction retrieved successfully: transaction_id=%s", transactionID)
	handlers.RespondJSON(w, http.StatusOK, transaction)
}
