package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/integrations/googlecalendar"
)

// CalendarClient клиент удаленного хранилища расписания
type CalendarClient interface {
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]googlecalendar.Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*googlecalendar.Event, error)
	CreateEvent(ctx context.Context, calendarID string, in googlecalendar.CreateEventInput) (*googlecalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
