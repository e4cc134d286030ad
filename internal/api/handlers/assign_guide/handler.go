package assign_guide

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/api/middleware"
	"github.com/opentrip/OTS-Backend/internal/service/trips"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "поездка не найдена"
	msgForbidden          = "доступ запрещен"
	msgGuideConflict      = "гид уже назначен или занят в даты поездки"
	msgInvalidInput       = "некорректные данные гида"
)

type Handler struct {
	service TripService
	logger  Logger
}

func NewHandler(service TripService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/opentrip/trips/{tripId}/guide
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID := vars["tripId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /trips/{id}/guide - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AssignGuideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{id}/guide - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	trip, err := h.service.AssignGuide(r.Context(), tripID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			h.logger.Warn("POST /trips/{id}/guide - Trip not found: trip_id=%s", tripID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, trips.ErrAccessDenied):
			h.logger.Warn("POST /trips/{id}/guide - Access denied: trip_id=%s, user_id=%s", tripID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, trips.ErrGuideConflict):
			h.logger.Warn("POST /trips/{id}/guide - Guide conflict: trip_id=%s", tripID)
			handlers.RespondBadRequest(w, msgGuideConflict)

		case errors.Is(err, trips.ErrInvalidInput):
			h.logger.Warn("POST /trips/{id}/guide - Invalid input: trip_id=%s, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /trips/{id}/guide - Failed to assign guide: trip_id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{id}/guide - Guide assigned successfully: trip_id=%s, user_id=%s", tripID, userID)
	handlers.RespondJSON(w, http.StatusOK, trip)
}
