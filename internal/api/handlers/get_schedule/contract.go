package get_schedule

import (
	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
)

type AvailabilityEngine interface {
	Params() availability.Params
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
