package cancel_appointment

import "context"

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	DeleteAppointment(ctx context.Context, calendarID, appointmentID string) error
}

// Locker интерфейс сериализации фиксаций по ключу календаря
type Locker interface {
	Do(key string, fn func() error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
