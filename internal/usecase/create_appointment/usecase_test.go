package create_appointment

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/keylock"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

// fakeSchedule потокобезопасный фейк сервиса расписания:
// после первой успешной фиксации слот считается занятым
type fakeSchedule struct {
	mu           sync.Mutex
	booked       bool
	stillFreeErr error
	createErr    error
	created      []domain.Appointment
}

func (f *fakeSchedule) IsStillFree(_ context.Context, _ string, _ domain.SlotCandidate, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stillFreeErr != nil {
		return false, f.stillFreeErr
	}
	return !f.booked, nil
}

func (f *fakeSchedule) CreateAppointment(_ context.Context, appt domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.booked = true
	result := appt
	result.ID = fmt.Sprintf("evt-%d", len(f.created)+1)
	f.created = append(f.created, result)
	return &result, nil
}

func testWindows(t *testing.T) *schedule.Windows {
	t.Helper()
	day := &config.DayWindow{Open: "09:00", Close: "17:00"}
	w, err := schedule.NewWindows(config.ScheduleConfig{
		Timezone: "UTC",
		BusinessHours: config.BusinessHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
		},
	})
	require.NoError(t, err)
	return w
}

// 2026-09-14 - понедельник
var monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		CalendarID:   "cal",
		Date:         monday,
		StartTime:    "10:00",
		PatientName:  "Иван Петров",
		PatientEmail: "ivan@example.com",
		ServiceType:  "консультация",
	}
}

func newTestUseCase(t *testing.T, svc *fakeSchedule) *UseCase {
	t.Helper()
	uc := NewUseCase(svc, testWindows(t), keylock.New(), nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: monday}
	return uc
}

func TestExecute_Success(t *testing.T) {
	svc := &fakeSchedule{}
	uc := newTestUseCase(t, svc)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "evt-1", resp.ID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, svc.created, 1)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC), svc.created[0].Start)
}

func TestExecute_SlotConflict(t *testing.T) {
	svc := &fakeSchedule{booked: true}
	uc := newTestUseCase(t, svc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, svc.created)
}

func TestExecute_DayClosed(t *testing.T) {
	uc := newTestUseCase(t, &fakeSchedule{})

	req := validRequest()
	req.Date = monday.AddDate(0, 0, 5) // суббота

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc := newTestUseCase(t, &fakeSchedule{})

	req := validRequest()
	req.StartTime = "16:30" // конец 17:30 позже закрытия

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_StartInPast(t *testing.T) {
	svc := &fakeSchedule{}
	uc := NewUseCase(svc, testWindows(t), keylock.New(), nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: monday.Add(12 * time.Hour)} // уже полдень

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(t, &fakeSchedule{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing calendar", func(r *Request) { r.CalendarID = "" }},
		{"missing patient name", func(r *Request) { r.PatientName = " " }},
		{"bad email", func(r *Request) { r.PatientEmail = "not-an-email" }},
		{"missing service type", func(r *Request) { r.ServiceType = "" }},
		{"duration too short", func(r *Request) { r.DurationMinutes = 1 }},
		{"duration too long", func(r *Request) { r.DurationMinutes = 600 }},
		{"bad time format", func(r *Request) { r.StartTime = "10.00" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_CalendarUnavailable(t *testing.T) {
	svc := &fakeSchedule{stillFreeErr: schedule.ErrUnavailable}
	uc := newTestUseCase(t, svc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_CreateFails(t *testing.T) {
	svc := &fakeSchedule{createErr: schedule.ErrTimeout}
	uc := newTestUseCase(t, svc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_ConcurrentRequestsOneWins(t *testing.T) {
	svc := &fakeSchedule{}
	uc := newTestUseCase(t, svc)

	const attempts = 10
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, conflicted := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotConflict)
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, svc.created, 1)
}
