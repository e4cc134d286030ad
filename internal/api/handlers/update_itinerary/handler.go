package update_itinerary

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
	msgInvalidInput       = "некорректные данные маршрута"
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

// Handle PUT /api/opentrip/trips/{tripId}/itinerary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID := vars["tripId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /trips/{id}/itinerary - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateItineraryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /trips/{id}/itinerary - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	trip, err := h.service.UpdateItinerary(r.Context(), tripID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			h.logger.Warn("PUT /trips/{id}/itinerary - Trip not found: trip_id=%s", tripID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, trips.ErrAccessDenied):
			h.logger.Warn("PUT /trips/{id}/itinerary - Access denied: trip_id=%s, user_id=%s", tripID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, trips.ErrInvalidInput):
			h.logger.Warn("PUT /trips/{id}/itinerary - Invalid input: trip_id=%s, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /trips/{id}/itinerary - Failed to update itinerary: trip_id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /trips/{id}/itinerary - Itinerary updated successfully: trip_id=%s", tripID)
	handlers.RespondJSON(w, http.StatusOK, trip)
}
