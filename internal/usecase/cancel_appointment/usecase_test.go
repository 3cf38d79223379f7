package cancel_appointment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/keylock"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSchedule struct {
	deleteErr  error
	deletedIDs []string
}

func (f *fakeSchedule) DeleteAppointment(_ context.Context, _, appointmentID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, appointmentID)
	return nil
}

func TestExecute_Success(t *testing.T) {
	svc := &fakeSchedule{}
	uc := NewUseCase(svc, keylock.New(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CalendarID: "cal", AppointmentID: "evt-1"})

	require.NoError(t, err)
	assert.Equal(t, "evt-1", resp.AppointmentID)
	assert.False(t, resp.AlreadyGone)
	assert.Equal(t, []string{"evt-1"}, svc.deletedIDs)
}

func TestExecute_AlreadyGoneIsSuccess(t *testing.T) {
	svc := &fakeSchedule{deleteErr: schedule.ErrAppointmentNotFound}
	uc := NewUseCase(svc, keylock.New(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CalendarID: "cal", AppointmentID: "evt-1"})

	require.NoError(t, err)
	assert.True(t, resp.AlreadyGone)
}

func TestExecute_CalendarUnavailable(t *testing.T) {
	svc := &fakeSchedule{deleteErr: schedule.ErrUnavailable}
	uc := NewUseCase(svc, keylock.New(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CalendarID: "cal", AppointmentID: "evt-1"})

	require.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSchedule{}, keylock.New(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CalendarID: "", AppointmentID: "evt-1"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CalendarID: "cal", AppointmentID: ""})
	require.ErrorIs(t, err, ErrInvalidInput)

	longReason := strings.Repeat("x", 501)
	_, err = uc.Execute(context.Background(), &Request{
		CalendarID:    "cal",
		AppointmentID: "evt-1",
		Reason:        ptr.Ptr(longReason),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
