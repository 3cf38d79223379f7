package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/googlecalendar"
)

const retryBaseDelay = 500 * time.Millisecond

// Service доменная прослойка над удаленным календарем: занятость,
// свободные промежутки, создание и удаление записей.
//
// Читающие вызовы повторяются при недоступности календаря, изменяющие
// никогда не повторяются автоматически: повтор успешного Create,
// чей ответ потерялся, создал бы дубликат события.
type Service struct {
	client      CalendarClient
	readRetries int
	log         Logger
}

// NewService создает сервис расписания.
// readRetries - число дополнительных попыток для читающих вызовов.
func NewService(client CalendarClient, readRetries int, log Logger) *Service {
	if readRetries < 0 {
		readRetries = 0
	}
	return &Service{
		client:      client,
		readRetries: readRetries,
		log:         log,
	}
}

// BusyIntervals возвращает нормализованные занятые интервалы
// календаря в диапазоне [from, to)
func (s *Service) BusyIntervals(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyInterval, error) {
	events, err := s.listWithRetry(ctx, calendarID, from, to)
	if err != nil {
		return nil, err
	}

	intervals := make([]domain.BusyInterval, 0, len(events))
	for _, ev := range events {
		intervals = append(intervals, domain.BusyInterval{
			Start:         ev.Start,
			End:           ev.End,
			SourceEventID: ev.ID,
		})
	}

	return domain.NormalizeIntervals(intervals), nil
}

// FreeGaps возвращает свободные промежутки внутри рабочего окна
func (s *Service) FreeGaps(ctx context.Context, calendarID string, window domain.BusinessWindow) ([]domain.Gap, error) {
	windowStart, windowEnd, err := window.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	busy, err := s.BusyIntervals(ctx, calendarID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	return domain.FreeGaps(busy, windowStart, windowEnd), nil
}

// IsStillFree перепроверяет занятость кандидата непосредственно перед
// фиксацией. Запрашивается ровно диапазон кандидата, чтобы окно между
// проверкой и записью было минимальным. Событие excludeEventID
// не считается конфликтом (перенос собственной записи).
func (s *Service) IsStillFree(ctx context.Context, calendarID string, candidate domain.SlotCandidate, excludeEventID string) (bool, error) {
	events, err := s.listWithRetry(ctx, calendarID, candidate.Start, candidate.End)
	if err != nil {
		return false, err
	}

	for _, ev := range events {
		if excludeEventID != "" && ev.ID == excludeEventID {
			continue
		}
		busy := domain.BusyInterval{Start: ev.Start, End: ev.End}
		if busy.Overlaps(candidate.Start, candidate.End) {
			return false, nil
		}
	}

	return true, nil
}

// GetAppointment возвращает запись календаря по идентификатору события
func (s *Service) GetAppointment(ctx context.Context, calendarID, appointmentID string) (*domain.Appointment, error) {
	ev, err := s.client.GetEvent(ctx, calendarID, appointmentID)
	if err != nil {
		return nil, s.mapClientErr(err)
	}

	appt := decodeEvent(calendarID, *ev)
	return &appt, nil
}

// CreateAppointment создает запись в календаре и возвращает ее
// с присвоенным хранилищем идентификатором. Не повторяется при сбоях.
func (s *Service) CreateAppointment(ctx context.Context, appt domain.Appointment) (*domain.Appointment, error) {
	created, err := s.client.CreateEvent(ctx, appt.CalendarID, encodeEvent(appt))
	if err != nil {
		return nil, s.mapClientErr(err)
	}

	result := appt
	result.ID = created.ID
	return &result, nil
}

// DeleteAppointment удаляет запись из календаря. Не повторяется при сбоях.
func (s *Service) DeleteAppointment(ctx context.Context, calendarID, appointmentID string) error {
	if err := s.client.DeleteEvent(ctx, calendarID, appointmentID); err != nil {
		return s.mapClientErr(err)
	}
	return nil
}

// Appointments возвращает записи календаря в диапазоне [from, to),
// упорядоченные по времени начала
func (s *Service) Appointments(ctx context.Context, calendarID string, from, to time.Time) ([]domain.Appointment, error) {
	events, err := s.listWithRetry(ctx, calendarID, from, to)
	if err != nil {
		return nil, err
	}

	appointments := make([]domain.Appointment, 0, len(events))
	for _, ev := range events {
		appointments = append(appointments, decodeEvent(calendarID, ev))
	}

	return appointments, nil
}

// listWithRetry выполняет читающий вызов с ограниченным числом повторов.
// Повторяются только недоступность и таймаут; задержка удваивается
// после каждой неудачной попытки.
func (s *Service) listWithRetry(ctx context.Context, calendarID string, from, to time.Time) ([]googlecalendar.Event, error) {
	var lastErr error
	delay := retryBaseDelay

	for attempt := 0; attempt <= s.readRetries; attempt++ {
		if attempt > 0 {
			s.log.Warn("listWithRetry: retrying ListEvents calendar=%s attempt=%d after error: %v",
				calendarID, attempt, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, s.mapClientErr(fmt.Errorf("%w: %v", googlecalendar.ErrTimeout, ctx.Err()))
			}
			delay *= 2
		}

		events, err := s.client.ListEvents(ctx, calendarID, from, to)
		if err == nil {
			return events, nil
		}
		lastErr = err

		if !errors.Is(err, googlecalendar.ErrUnavailable) && !errors.Is(err, googlecalendar.ErrTimeout) {
			break
		}
	}

	return nil, s.mapClientErr(lastErr)
}

// mapClientErr переводит ошибки клиента календаря в ошибки сервиса
func (s *Service) mapClientErr(err error) error {
	switch {
	case errors.Is(err, googlecalendar.ErrEventNotFound):
		return fmt.Errorf("%w: %v", ErrAppointmentNotFound, err)
	case errors.Is(err, googlecalendar.ErrTimeout):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, googlecalendar.ErrRejected):
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
