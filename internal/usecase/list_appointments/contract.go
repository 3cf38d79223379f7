package list_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	Appointments(ctx context.Context, calendarID string, from, to time.Time) ([]domain.Appointment, error)
}

// WindowProvider интерфейс поставщика рабочих окон
type WindowProvider interface {
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
