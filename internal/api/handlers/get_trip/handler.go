package get_trip

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	"github.com/opentrip/OTS-Backend/internal/service/trips"
)

const msgNotFound = "поездка не найдена"

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

// Handle GET /api/opentrip/trips/{tripId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID := vars["tripId"]

	trip, err := h.service.GetByID(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			h.logger.Warn("GET /trips/{id} - Trip not found: trip_id=%s", tripID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /trips/{id} - Failed to get trip: trip_id=%s, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips/{id} - Trip retrieved successfully: trip_id=%s", tripID)
	handlers.RespondJSON(w, http.StatusOK, trip)
}
