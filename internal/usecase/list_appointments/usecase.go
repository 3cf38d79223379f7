package list_appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case получения списка записей календаря
type UseCase struct {
	scheduleService ScheduleService
	windows         WindowProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleService ScheduleService, windows WindowProvider, logger Logger) *UseCase {
	return &UseCase{
		scheduleService: scheduleService,
		windows:         windows,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения списка записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAppointments: calendar=%s", req.CalendarID)

	// 1. Валидация входных данных
	if req.CalendarID == "" {
		return nil, fmt.Errorf("%w: calendarID is required", ErrInvalidInput)
	}

	// 2. Эффективный диапазон: по умолчанию от текущего момента
	// на горизонт поиска вперед
	from := req.From
	if from.IsZero() {
		from = uc.timeProvider.Now().In(uc.windows.Location())
	}
	to := req.To
	if to.IsZero() {
		to = from.AddDate(0, 0, uc.windows.FindNextDays())
	}
	if !from.Before(to) {
		uc.logger.Warn("ListAppointments: invalid range from=%s to=%s", from, to)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	// 3. Читаем записи из календаря
	appointments, err := uc.scheduleService.Appointments(ctx, req.CalendarID, from, to)
	if err != nil {
		if errors.Is(err, schedule.ErrUnavailable) || errors.Is(err, schedule.ErrTimeout) {
			uc.logger.Error("ListAppointments: calendar unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		uc.logger.Error("ListAppointments: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	loc := uc.windows.Location()
	items := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		items = append(items, Appointment{
			ID:              a.ID,
			Date:            a.Start.In(loc),
			StartTime:       types.NewTimeString(a.Start.In(loc)),
			EndTime:         types.NewTimeString(a.End.In(loc)),
			Start:           a.Start,
			End:             a.End,
			DurationMinutes: a.DurationMinutes(),
			PatientName:     a.PatientName,
			PatientEmail:    a.PatientEmail,
			PatientPhone:    a.PatientPhone,
			ServiceType:     a.ServiceType,
			Notes:           a.Notes,
		})
	}

	uc.logger.Info("ListAppointments: calendar=%s, found %d appointments", req.CalendarID, len(items))

	return &Response{
		CalendarID:   req.CalendarID,
		From:         from,
		To:           to,
		Appointments: items,
	}, nil
}
