package update_trip_capacity

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
	msgCapacityConflict   = "вместимость не может быть меньше числа бронирований"
	msgInvalidInput       = "некорректное значение вместимости"
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

// Handle PUT /api/opentrip/trips/{tripId}/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID := vars["tripId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /trips/{id}/capacity - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /trips/{id}/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	trip, err := h.service.UpdateCapacity(r.Context(), tripID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			h.logger.Warn("PUT /trips/{id}/capacity - Trip not found: trip_id=%s", tripID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, trips.ErrAccessDenied):
			h.logger.Warn("PUT /trips/{id}/capacity - Access denied: trip_id=%s, user_id=%s", tripID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, trips.ErrCapacityConflict):
			h.logger.Warn("PUT /trips/{id}/capacity - Capacity below bookings: trip_id=%s, capacity=%d", tripID, req.Capacity)
			handlers.RespondError(w, http.StatusConflict, msgCapacityConflict)

		case errors.Is(err, trips.ErrInvalidInput):
			h.logger.Warn("PUT /trips/{id}/capacity - Invalid input: trip_id=%s, capacity=%d", tripID, req.Capacity)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /trips/{id}/capacity - Failed to update capacity: trip_id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /trips/{id}/capacity - Capacity updated successfully: trip_id=%s, capacity=%d", tripID, req.Capacity)
	handlers.RespondJSON(w, http.StatusOK, trip)
}
