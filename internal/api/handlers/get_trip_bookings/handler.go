package get_trip_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/api/middleware"
	"github.com/opentrip/OTS-Backend/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgTripNotFound  = "поездка не найдена"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/opentrip/trips/{tripId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID := vars["tripId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /trips/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	bookingList, err := h.service.GetTripBookings(r.Context(), tripID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrTripNotFound):
			h.logger.Warn("GET /trips/{id}/bookings - Trip not found: trip_id=%s", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /trips/{id}/bookings - Access denied: trip_id=%s, user_id=%s", tripID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /trips/{id}/bookings - Failed to get bookings: trip_id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips/{id}/bookings - Bookings retrieved successfully: trip_id=%s, count=%d",
		tripID, len(bookingList.Bookings))
	handlers.RespondJSON(w, http.StatusOK, bookingList)
}
