package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeCalendarClient управляемый клиент календаря для тестов
type fakeCalendarClient struct {
	listCalls  int
	listErrs   []error // ошибки для первых вызовов ListEvents, по порядку
	events     []googlecalendar.Event
	getEvent   *googlecalendar.Event
	getErr     error
	createErr  error
	deleteErr  error
	created    []googlecalendar.CreateEventInput
	deletedIDs []string
}

func (f *fakeCalendarClient) ListEvents(_ context.Context, _ string, _, _ time.Time) ([]googlecalendar.Event, error) {
	f.listCalls++
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.events, nil
}

func (f *fakeCalendarClient) GetEvent(_ context.Context, _, _ string) (*googlecalendar.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getEvent, nil
}

func (f *fakeCalendarClient) CreateEvent(_ context.Context, _ string, in googlecalendar.CreateEventInput) (*googlecalendar.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &googlecalendar.Event{ID: "evt-new", Start: in.Start, End: in.End}, nil
}

func (f *fakeCalendarClient) DeleteEvent(_ context.Context, _, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, eventID)
	return nil
}

func ts(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2026-09-14 "+hhmm)
	require.NoError(t, err)
	return parsed
}

func TestBusyIntervals_NormalizesEvents(t *testing.T) {
	client := &fakeCalendarClient{
		events: []googlecalendar.Event{
			{ID: "b", Start: ts(t, "11:00"), End: ts(t, "12:00")},
			{ID: "a", Start: ts(t, "10:00"), End: ts(t, "11:30")},
		},
	}
	svc := NewService(client, 0, nopLogger{})

	got, err := svc.BusyIntervals(context.Background(), "cal", ts(t, "09:00"), ts(t, "17:00"))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ts(t, "10:00"), got[0].Start)
	assert.Equal(t, ts(t, "12:00"), got[0].End)
}

func TestBusyIntervals_RetriesOnUnavailable(t *testing.T) {
	client := &fakeCalendarClient{
		listErrs: []error{googlecalendar.ErrUnavailable, googlecalendar.ErrTimeout},
	}
	svc := NewService(client, 2, nopLogger{})

	_, err := svc.BusyIntervals(context.Background(), "cal", ts(t, "09:00"), ts(t, "17:00"))

	require.NoError(t, err)
	assert.Equal(t, 3, client.listCalls)
}

func TestBusyIntervals_ExhaustsRetryBudget(t *testing.T) {
	client := &fakeCalendarClient{
		listErrs: []error{
			googlecalendar.ErrUnavailable,
			googlecalendar.ErrUnavailable,
			googlecalendar.ErrUnavailable,
		},
	}
	svc := NewService(client, 2, nopLogger{})

	_, err := svc.BusyIntervals(context.Background(), "cal", ts(t, "09:00"), ts(t, "17:00"))

	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 3, client.listCalls)
}

func TestBusyIntervals_DoesNotRetryRejected(t *testing.T) {
	client := &fakeCalendarClient{
		listErrs: []error{googlecalendar.ErrRejected},
	}
	svc := NewService(client, 2, nopLogger{})

	_, err := svc.BusyIntervals(context.Background(), "cal", ts(t, "09:00"), ts(t, "17:00"))

	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, 1, client.listCalls)
}

func TestIsStillFree(t *testing.T) {
	client := &fakeCalendarClient{
		events: []googlecalendar.Event{
			{ID: "evt-1", Start: ts(t, "10:00"), End: ts(t, "11:00")},
		},
	}
	svc := NewService(client, 0, nopLogger{})

	candidate := domain.SlotCandidate{Start: ts(t, "10:30"), End: ts(t, "11:30")}

	free, err := svc.IsStillFree(context.Background(), "cal", candidate, "")
	require.NoError(t, err)
	assert.False(t, free)

	// Собственное событие не считается конфликтом
	free, err = svc.IsStillFree(context.Background(), "cal", candidate, "evt-1")
	require.NoError(t, err)
	assert.True(t, free)
}

func TestIsStillFree_TouchingBoundariesAreFree(t *testing.T) {
	client := &fakeCalendarClient{
		events: []googlecalendar.Event{
			{ID: "evt-1", Start: ts(t, "10:00"), End: ts(t, "11:00")},
		},
	}
	svc := NewService(client, 0, nopLogger{})

	free, err := svc.IsStillFree(context.Background(), "cal",
		domain.SlotCandidate{Start: ts(t, "11:00"), End: ts(t, "12:00")}, "")

	require.NoError(t, err)
	assert.True(t, free)
}

func TestCreateAppointment_AssignsRemoteID(t *testing.T) {
	client := &fakeCalendarClient{}
	svc := NewService(client, 0, nopLogger{})

	appt := domain.Appointment{
		CalendarID:   "cal",
		Start:        ts(t, "10:00"),
		End:          ts(t, "11:00"),
		PatientName:  "Иван Петров",
		PatientEmail: "ivan@example.com",
		ServiceType:  "консультация",
	}

	created, err := svc.CreateAppointment(context.Background(), appt)

	require.NoError(t, err)
	assert.Equal(t, "evt-new", created.ID)
	require.Len(t, client.created, 1)
	assert.Equal(t, "ivan@example.com", client.created[0].AttendeeEmail)
}

func TestDeleteAppointment_MapsNotFound(t *testing.T) {
	client := &fakeCalendarClient{deleteErr: googlecalendar.ErrEventNotFound}
	svc := NewService(client, 0, nopLogger{})

	err := svc.DeleteAppointment(context.Background(), "cal", "evt-x")

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestEncodeDecodeEvent_RoundTrip(t *testing.T) {
	appt := domain.Appointment{
		CalendarID:   "cal",
		Start:        ts(t, "10:00"),
		End:          ts(t, "11:00"),
		PatientName:  "Иван Петров",
		PatientEmail: "ivan@example.com",
		PatientPhone: ptr.Ptr("+7 900 000-00-00"),
		ServiceType:  "консультация",
		Notes:        ptr.Ptr("первый визит"),
	}

	in := encodeEvent(appt)
	got := decodeEvent("cal", googlecalendar.Event{
		ID:          "evt-1",
		Start:       appt.Start,
		End:         appt.End,
		Description: in.Description,
	})

	assert.Equal(t, "evt-1", got.ID)
	assert.Equal(t, appt.PatientName, got.PatientName)
	assert.Equal(t, appt.PatientEmail, got.PatientEmail)
	require.NotNil(t, got.PatientPhone)
	assert.Equal(t, *appt.PatientPhone, *got.PatientPhone)
	assert.Equal(t, appt.ServiceType, got.ServiceType)
	require.NotNil(t, got.Notes)
	assert.Equal(t, *appt.Notes, *got.Notes)
}

func TestDecodeEvent_ForeignEventHasNoPatientDetails(t *testing.T) {
	got := decodeEvent("cal", googlecalendar.Event{
		ID:          "evt-2",
		Start:       ts(t, "13:00"),
		End:         ts(t, "14:00"),
		Description: "created by hand in the calendar UI",
	})

	assert.Equal(t, "evt-2", got.ID)
	assert.Empty(t, got.PatientName)
	assert.Nil(t, got.Notes)
}
