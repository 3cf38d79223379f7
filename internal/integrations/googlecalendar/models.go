package googlecalendar

import "time"

// Event событие удаленного календаря, уже отфильтрованное политикой занятости:
// отмененные, целодневные и отклоненные события до вызывающего кода не доходят
type Event struct {
	ID          string
	Start       time.Time
	End         time.Time
	Status      string
	Summary     string
	Description string
}

// CreateEventInput данные для создания события в календаре
type CreateEventInput struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	AttendeeName  string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для метрик вызовов API (может быть nil)
type MetricsObserver interface {
	ObserveUpstreamCall(operation, outcome string, duration time.Duration)
}
