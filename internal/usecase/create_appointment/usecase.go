package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	scheduleService ScheduleService
	windows         WindowProvider
	locker          Locker
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleService ScheduleService, windows WindowProvider, locker Locker, logger Logger) *UseCase {
	return &UseCase{
		scheduleService: scheduleService,
		windows:         windows,
		locker:          locker,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Фиксации по одному календарю сериализуются локальным замком:
// перепроверка занятости и запись в календарь выполняются под ним,
// чтобы два одновременных запроса не зафиксировали один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: calendar=%s, date=%s, time=%s, patient=%s",
		req.CalendarID, req.Date.Format(domain.DateFormat), req.StartTime, req.PatientName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Эффективная длительность приема
	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.windows.DefaultDurationMinutes()
	}

	// 3. Рабочее окно на дату
	window, open := uc.windows.For(req.Date)
	if !open {
		uc.logger.Warn("CreateAppointment: closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrDayClosed
	}

	// 4. Слот должен целиком помещаться в рабочее окно
	if err := validateWithinWindow(window, req.StartTime, duration); err != nil {
		uc.logger.Warn("CreateAppointment: window validation failed: %v", err)
		return nil, err
	}

	// 5. Строим кандидата в бизнес-зоне времени
	start, err := req.StartTime.At(req.Date, uc.windows.Location())
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to build slot start: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot start: %v", ErrInternal, err)
	}
	candidate := domain.NewSlotCandidate(start, duration)

	// 6. Начало приема не должно быть в прошлом
	if err := validateNotInPast(candidate.Start, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	appt := domain.Appointment{
		CalendarID:   req.CalendarID,
		Start:        candidate.Start,
		End:          candidate.End,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		PatientPhone: req.PatientPhone,
		ServiceType:  req.ServiceType,
		Notes:        req.Notes,
	}

	// 7. Перепроверка занятости и фиксация под замком календаря
	var created *domain.Appointment
	err = uc.locker.Do(req.CalendarID, func() error {
		free, err := uc.scheduleService.IsStillFree(ctx, req.CalendarID, candidate, "")
		if err != nil {
			uc.logger.Error("CreateAppointment: conflict check failed: %v", err)
			return uc.mapScheduleErr(err)
		}
		if !free {
			uc.logger.Warn("CreateAppointment: slot %s-%s is already taken",
				candidate.Start.Format(domain.TimeFormat), candidate.End.Format(domain.TimeFormat))
			return ErrSlotConflict
		}

		created, err = uc.scheduleService.CreateAppointment(ctx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return uc.mapScheduleErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)

	return &Response{
		ID:              created.ID,
		CalendarID:      created.CalendarID,
		Date:            req.Date,
		StartTime:       types.NewTimeString(created.Start.In(uc.windows.Location())),
		EndTime:         types.NewTimeString(created.End.In(uc.windows.Location())),
		Start:           created.Start,
		End:             created.End,
		DurationMinutes: duration,
		PatientName:     created.PatientName,
		PatientEmail:    created.PatientEmail,
		PatientPhone:    created.PatientPhone,
		ServiceType:     created.ServiceType,
		Notes:           created.Notes,
	}, nil
}

// mapScheduleErr переводит ошибки сервиса расписания в ошибки usecase
func (uc *UseCase) mapScheduleErr(err error) error {
	if errors.Is(err, schedule.ErrUnavailable) || errors.Is(err, schedule.ErrTimeout) {
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
