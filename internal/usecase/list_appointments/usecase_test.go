package list_appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type fakeSchedule struct {
	appointments []domain.Appointment
	listErr      error
	lastFrom     time.Time
	lastTo       time.Time
}

func (f *fakeSchedule) Appointments(_ context.Context, _ string, from, to time.Time) ([]domain.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastFrom, f.lastTo = from, to
	return f.appointments, nil
}

func testWindows(t *testing.T) *schedule.Windows {
	t.Helper()
	day := &config.DayWindow{Open: "09:00", Close: "17:00"}
	w, err := schedule.NewWindows(config.ScheduleConfig{
		Timezone:     "UTC",
		FindNextDays: 14,
		BusinessHours: config.BusinessHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
		},
	})
	require.NoError(t, err)
	return w
}

var now = time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, svc *fakeSchedule) *UseCase {
	t.Helper()
	uc := NewUseCase(svc, testWindows(t), nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_DefaultRange(t *testing.T) {
	svc := &fakeSchedule{
		appointments: []domain.Appointment{
			{
				ID:           "evt-1",
				CalendarID:   "cal",
				Start:        time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
				End:          time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
				PatientName:  "Иван Петров",
				PatientEmail: "ivan@example.com",
				ServiceType:  "консультация",
			},
		},
	}
	uc := newTestUseCase(t, svc)

	resp, err := uc.Execute(context.Background(), &Request{CalendarID: "cal"})

	require.NoError(t, err)
	assert.Equal(t, now, svc.lastFrom)
	assert.Equal(t, now.AddDate(0, 0, 14), svc.lastTo)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "evt-1", resp.Appointments[0].ID)
	assert.Equal(t, "10:00", resp.Appointments[0].StartTime.String())
	assert.Equal(t, 60, resp.Appointments[0].DurationMinutes)
}

func TestExecute_ExplicitRange(t *testing.T) {
	svc := &fakeSchedule{}
	uc := newTestUseCase(t, svc)

	from := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{CalendarID: "cal", From: from, To: to})

	require.NoError(t, err)
	assert.Equal(t, from, resp.From)
	assert.Equal(t, to, resp.To)
	assert.Empty(t, resp.Appointments)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(t, &fakeSchedule{})

	from := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{CalendarID: "cal", From: from, To: to})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MissingCalendar(t *testing.T) {
	uc := newTestUseCase(t, &fakeSchedule{})

	_, err := uc.Execute(context.Background(), &Request{})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CalendarUnavailable(t *testing.T) {
	uc := newTestUseCase(t, &fakeSchedule{listErr: schedule.ErrTimeout})

	_, err := uc.Execute(context.Background(), &Request{CalendarID: "cal"})

	require.ErrorIs(t, err, ErrCalendarUnavailable)
}
