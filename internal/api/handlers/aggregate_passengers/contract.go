package aggregate_passengers

import (
	"context"

	aggregatePassengers "github.com/opentrip/OTS-Backend/internal/usecase/aggregate_passengers"
)

type AggregatePassengersUseCase interface {
	Execute(ctx context.Context, req *aggregatePassengers.Request) (*aggregatePassengers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
