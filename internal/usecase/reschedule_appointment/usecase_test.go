package reschedule_appointment

import (
	"context"
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

type fakeSchedule struct {
	original            *domain.Appointment
	getErr              error
	stillFree           bool
	stillFreeErr        error
	excludedID          string
	createErr           error
	deleteErr           error
	created             []domain.Appointment
	deletedIDs          []string
	createdBeforeDelete bool
}

func (f *fakeSchedule) GetAppointment(_ context.Context, _, _ string) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.original, nil
}

func (f *fakeSchedule) IsStillFree(_ context.Context, _ string, _ domain.SlotCandidate, excludeEventID string) (bool, error) {
	f.excludedID = excludeEventID
	if f.stillFreeErr != nil {
		return false, f.stillFreeErr
	}
	return f.stillFree, nil
}

func (f *fakeSchedule) CreateAppointment(_ context.Context, appt domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	result := appt
	result.ID = "evt-new"
	f.created = append(f.created, result)
	return &result, nil
}

func (f *fakeSchedule) DeleteAppointment(_ context.Context, _, appointmentID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.createdBeforeDelete = len(f.created) > 0
	f.deletedIDs = append(f.deletedIDs, appointmentID)
	return nil
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

func originalAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:           "evt-old",
		CalendarID:   "cal",
		Start:        time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		End:          time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
		PatientName:  "Иван Петров",
		PatientEmail: "ivan@example.com",
		ServiceType:  "консультация",
	}
}

func validRequest() *Request {
	return &Request{
		CalendarID:    "cal",
		AppointmentID: "evt-old",
		NewDate:       monday.AddDate(0, 0, 1), // вторник
		NewStartTime:  "14:00",
	}
}

func newTestUseCase(t *testing.T, svc *fakeSchedule) *UseCase {
	t.Helper()
	uc := NewUseCase(svc, testWindows(t), keylock.New(), nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: monday}
	return uc
}

func TestExecute_Success(t *testing.T) {
	svc := &fakeSchedule{original: originalAppointment(), stillFree: true}
	uc := newTestUseCase(t, svc)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "evt-new", resp.ID)
	assert.Equal(t, "evt-old", resp.PreviousID)
	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, "15:00", resp.EndTime.String())
	// Длительность унаследована от исходной записи
	assert.Equal(t, 60, resp.DurationMinutes)
	// Данные пациента перенесены
	assert.Equal(t, "Иван Петров", resp.PatientName)
	assert.Nil(t, resp.StaleAppointmentWarning)
	// Новая запись создана до удаления старой
	assert.True(t, svc.createdBeforeDelete)
	assert.Equal(t, []string{"evt-old"}, svc.deletedIDs)
}

func TestExecute_ExcludesOriginalFromConflictCheck(t *testing.T) {
	svc := &fakeSchedule{original: originalAppointment(), stillFree: true}
	uc := newTestUseCase(t, svc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "evt-old", svc.excludedID)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	svc := &fakeSchedule{getErr: schedule.ErrAppointmentNotFound}
	uc := newTestUseCase(t, svc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_SlotConflictLeavesOriginal(t *testing.T) {
	svc := &fakeSchedule{original: originalAppointment(), stillFree: false}
	uc := newTestUseCase(t, svc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, svc.created)
	assert.Empty(t, svc.deletedIDs)
}

func TestExecute_CreateFailsLeavesOriginal(t *testing.T) {
	svc := &fakeSchedule{
		original:  originalAppointment(),
		stillFree: true,
		createErr: schedule.ErrUnavailable,
	}
	uc := newTestUseCase(t, svc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Empty(t, svc.deletedIDs)
}

func TestExecute_DeleteFailsRaisesStaleWarning(t *testing.T) {
	svc := &fakeSchedule{
		original:  originalAppointment(),
		stillFree: true,
		deleteErr: schedule.ErrUnavailable,
	}
	uc := newTestUseCase(t, svc)

	resp, err := uc.Execute(context.Background(), validRequest())

	// Перенос успешен, но осиротевшая запись поднята как предупреждение
	require.NoError(t, err)
	assert.Equal(t, "evt-new", resp.ID)
	require.NotNil(t, resp.StaleAppointmentWarning)
	assert.Contains(t, *resp.StaleAppointmentWarning, "evt-old")
}

func TestExecute_OriginalAlreadyGoneOnDelete(t *testing.T) {
	svc := &fakeSchedule{
		original:  originalAppointment(),
		stillFree: true,
		deleteErr: schedule.ErrAppointmentNotFound,
	}
	uc := newTestUseCase(t, svc)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.StaleAppointmentWarning)
}

func TestExecute_DayClosed(t *testing.T) {
	svc := &fakeSchedule{original: originalAppointment(), stillFree: true}
	uc := newTestUseCase(t, svc)

	req := validRequest()
	req.NewDate = monday.AddDate(0, 0, 5) // суббота

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	svc := &fakeSchedule{original: originalAppointment(), stillFree: true}
	uc := newTestUseCase(t, svc)

	req := validRequest()
	req.NewStartTime = "16:30"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrOutsideBusinessHours)
}
