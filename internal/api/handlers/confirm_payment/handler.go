package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/service/transactions"
)

const (
	msgNotFound      = "транзакция не найдена"
	msgCannotConfirm = "платёж не может быть подтверждён"
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

// Handle POST /api/opentrip/transactions/{transactionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	transactionID := vars["transactionId"]

	transaction, err := h.service.Confirm(r.Context(), transactionID)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrTransactionNotFound):
			h.logger.Warn("POST /transactions/{id}/confirm - Transaction not found: transaction_id=%s", transactionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transactions.ErrCannotConfirm):
			h.logger.Warn("POST /transactions/{id}/confirm - Cannot confirm: transaction_id=%s", transactionID)
			handlers.RespondBadRequest(w, msgCannotConfirm)

		default:
			h.logger.Error("POST /transactions/{id}/confirm - Failed to confirm payment: transaction_id=%s, error=%v",
				transactionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /transactions/{id}/confirm - Payment confirmed successfully: transaction_id=%s", transactionID)
	handlers.RespondJSON(w, http.StatusOK, transaction)
}
