package register_user

import (
	"errors"
	"net/http"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/service/auth"
	"github.com/opentrip/OTS-Backend/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserExists         = "пользователь с таким именем или email уже зарегистрирован"
	msgInvalidInput       = "некорректные данные регистрации"
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

// Handle POST /api/opentrip/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			h.logger.Warn("POST /auth/register - User already exists: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgUserExists)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: username=%s, error=%v", req.Username, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to register user: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered successfully: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
