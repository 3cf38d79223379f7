package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	GetAppointment(ctx context.Context, calendarID, appointmentID string) (*domain.Appointment, error)
	IsStillFree(ctx context.Context, calendarID string, candidate domain.SlotCandidate, excludeEventID string) (bool, error)
	CreateAppointment(ctx context.Context, appt domain.Appointment) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, calendarID, appointmentID string) error
}

// WindowProvider интерфейс поставщика рабочих окон
type WindowProvider interface {
	For(date time.Time) (domain.BusinessWindow, bool)
	Location() *time.Location
}

// Locker интерфейс сериализации фиксаций по ключу календаря
type Locker interface {
	Do(key string, fn func() error) error
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
