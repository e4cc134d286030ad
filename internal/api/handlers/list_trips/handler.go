package list_trips

import (
	"net/http"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
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

// Handle GET /api/opentrip/trips
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trips, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /trips - Failed to list trips: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /trips - Trips listed successfully: count=%d", len(trips.Trips))
	handlers.RespondJSON(w, http.StatusOK, trips)
}
