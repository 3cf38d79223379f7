package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	FreeGaps(ctx context.Context, calendarID string, window domain.BusinessWindow) ([]domain.Gap, error)
}

// WindowProvider интерфейс поставщика рабочих окон
type WindowProvider interface {
	For(date time.Time) (domain.BusinessWindow, bool)
	DefaultDurationMinutes() int
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
