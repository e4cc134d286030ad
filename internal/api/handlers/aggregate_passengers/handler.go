package aggregate_passengers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opentrip/OTS-Backend/internal/api/handlers"
	aggregatePassengers "github.com/opentrip/OTS-Backend/internal/usecase/aggregate_passengers"
)

const msgTripNotFound = "поездка не найдена"

type Handler struct {
	useCase AggregatePassengersUseCase
	logger  Logger
}

func NewHandler(useCase AggregatePassengersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/opentrip/aggregator/trips/{tripId}/passengers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID := vars["tripId"]

	result, err := h.useCase.Execute(r.Context(), &aggregatePassengers.Request{TripID: tripID})
	if err != nil {
		switch {
		case errors.Is(err, aggregatePassengers.ErrTripNotFound):
			h.logger.Warn("GET /aggregator/trips/{id}/passengers - Trip not found: trip_id=%s", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		default:
			h.logger.Error("GET /aggregator/trips/{id}/passengers - Failed to aggregate passengers: trip_id=%s, error=%v",
				tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /aggregator/trips/{id}/passengers - Passengers aggregated successfully: trip_id=%s, count=%d, degraded=%t",
		tripID, len(result.Passengers), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
