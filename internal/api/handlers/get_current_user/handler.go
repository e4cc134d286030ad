package get_current_user

import (
	"errors"
	"net/http"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/api/middleware"
	"github.com/opentrip/OTS-Backend/internal/service/auth"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "пользователь не найден"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/opentrip/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	user, err := h.service.GetMe(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("GET /auth/me - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /auth/me - Failed to get user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /auth/me - User retrieved successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
