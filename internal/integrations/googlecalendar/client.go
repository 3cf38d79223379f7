package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-SchedulingService/internal/config"
)

// Client клиент для работы с Google Calendar API
type Client struct {
	svc     *calendar.Service
	timeout time.Duration
	log     Logger
	metrics MetricsObserver
}

// NewService создает calendar.Service с автообновлением access-токена
// через oauth2 refresh token из конфигурации
func NewService(ctx context.Context, cfg config.GoogleConfig) (*calendar.Service, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}
	return svc, nil
}

// NewClient создает новый экземпляр клиента календаря.
// metrics может быть nil, если сбор метрик выключен.
func NewClient(svc *calendar.Service, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		svc:     svc,
		timeout: timeout,
		log:     log,
		metrics: metrics,
	}
}

// ListEvents возвращает события календаря в диапазоне [from, to),
// отсортированные по времени начала. События, не занимающие время
// (целодневные, отмененные, отклоненные владельцем календаря),
// отфильтровываются.
func (c *Client) ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	res, err := c.svc.Events.List(calendarID).
		Context(ctx).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		OrderBy("startTime").
		Do()
	if err != nil {
		mapped := c.mapError(err)
		c.observe("list_events", mapped, started)
		return nil, fmt.Errorf("%w: ListEvents calendar=%s: %v", mapped, calendarID, err)
	}
	c.observe("list_events", nil, started)

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		if !c.occupiesTime(item) {
			continue
		}

		start, errStart := time.Parse(time.RFC3339, item.Start.DateTime)
		end, errEnd := time.Parse(time.RFC3339, item.End.DateTime)
		if errStart != nil || errEnd != nil {
			c.log.Warn("ListEvents: skipping event id=%s with unparsable time: start=%q end=%q",
				item.Id, item.Start.DateTime, item.End.DateTime)
			continue
		}

		events = append(events, Event{
			ID:          item.Id,
			Start:       start,
			End:         end,
			Status:      item.Status,
			Summary:     item.Summary,
			Description: item.Description,
		})
	}

	return events, nil
}

// GetEvent возвращает событие календаря по идентификатору
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	item, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		mapped := c.mapError(err)
		c.observe("get_event", mapped, started)
		return nil, fmt.Errorf("%w: GetEvent calendar=%s event=%s: %v", mapped, calendarID, eventID, err)
	}
	c.observe("get_event", nil, started)

	// Удаленное хранилище отдает отмененные события по прямому запросу,
	// для вызывающего кода такое событие эквивалентно отсутствующему
	if !c.occupiesTime(item) {
		return nil, fmt.Errorf("%w: GetEvent calendar=%s event=%s: event does not occupy time", ErrEventNotFound, calendarID, eventID)
	}

	start, errStart := time.Parse(time.RFC3339, item.Start.DateTime)
	end, errEnd := time.Parse(time.RFC3339, item.End.DateTime)
	if errStart != nil || errEnd != nil {
		return nil, fmt.Errorf("%w: GetEvent calendar=%s event=%s: unparsable event time", ErrInternal, calendarID, eventID)
	}

	return &Event{
		ID:          item.Id,
		Start:       start,
		End:         end,
		Status:      item.Status,
		Summary:     item.Summary,
		Description: item.Description,
	}, nil
}

// CreateEvent создает событие в календаре и возвращает его с присвоенным ID
func (c *Client) CreateEvent(ctx context.Context, calendarID string, in CreateEventInput) (*Event, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ev := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: in.End.Format(time.RFC3339)},
	}
	if in.AttendeeEmail != "" {
		ev.Attendees = []*calendar.EventAttendee{
			{Email: in.AttendeeEmail, DisplayName: in.AttendeeName},
		}
	}

	started := time.Now()
	created, err := c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		mapped := c.mapError(err)
		c.observe("create_event", mapped, started)
		return nil, fmt.Errorf("%w: CreateEvent calendar=%s: %v", mapped, calendarID, err)
	}
	c.observe("create_event", nil, started)

	return &Event{
		ID:          created.Id,
		Start:       in.Start,
		End:         in.End,
		Status:      created.Status,
		Summary:     created.Summary,
		Description: created.Description,
	}, nil
}

// DeleteEvent удаляет событие из календаря
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		mapped := c.mapError(err)
		c.observe("delete_event", mapped, started)
		return fmt.Errorf("%w: DeleteEvent calendar=%s event=%s: %v", mapped, calendarID, eventID, err)
	}
	c.observe("delete_event", nil, started)

	return nil
}

// occupiesTime возвращает true, если событие занимает время в календаре.
// Политика занятости:
//   - отмененные события не занимают время
//   - целодневные события (без DateTime) не занимают время
//   - события, отклоненные владельцем календаря (self=declined), не занимают время
func (c *Client) occupiesTime(item *calendar.Event) bool {
	if item.Status == "cancelled" {
		return false
	}
	if item.Start == nil || item.Start.DateTime == "" || item.End == nil || item.End.DateTime == "" {
		return false
	}
	for _, att := range item.Attendees {
		if att.Self && att.ResponseStatus == "declined" {
			return false
		}
	}
	return true
}

// mapError переводит ошибки транспорта и API в sentinel-ошибки клиента
func (c *Client) mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 404 || gerr.Code == 410:
			return ErrEventNotFound
		case gerr.Code >= 400 && gerr.Code < 500:
			return ErrRejected
		default:
			return ErrUnavailable
		}
	}

	return ErrUnavailable
}

// observe фиксирует метрику вызова, если сбор метрик включен
func (c *Client) observe(operation string, mapped error, started time.Time) {
	if c.metrics == nil {
		return
	}

	outcome := "ok"
	switch {
	case mapped == nil:
		outcome = "ok"
	case errors.Is(mapped, ErrTimeout):
		outcome = "timeout"
	case errors.Is(mapped, ErrEventNotFound):
		outcome = "not_found"
	case errors.Is(mapped, ErrRejected):
		outcome = "rejected"
	default:
		outcome = "unavailable"
	}

	c.metrics.ObserveUpstreamCall(operation, outcome, time.Since(started))
}
