package find_next_available

import (
	"context"

	findNextAvailable "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_next_available"
)

type FindNextAvailableUseCase interface {
	Execute(ctx context.Context, req *findNextAvailable.Request) (*findNextAvailable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
