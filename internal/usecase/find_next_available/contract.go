package find_next_available

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
	FindNextDays() int
	Location() *time.Location
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
