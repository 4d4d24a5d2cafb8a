package get_horizon_availability

import (
	"context"

	getHorizonAvailability "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/get_horizon_availability"
)

type GetHorizonAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getHorizonAvailability.Request) (*getHorizonAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
