package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case для переноса записи на другое время
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

// Execute выполняет use case переноса записи.
//
// Порядок "создать новую, затем удалить старую" выбран намеренно:
// при сбое создания исходная запись остается нетронутой, пациент
// ничего не теряет. При сбое удаления перенос считается успешным,
// а осиротевшее событие поднимается в ответе как предупреждение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: calendar=%s, appointment=%s, newDate=%s, newTime=%s",
		req.CalendarID, req.AppointmentID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Исходная запись должна существовать
	original, err := uc.scheduleService.GetAppointment(ctx, req.CalendarID, req.AppointmentID)
	if err != nil {
		if errors.Is(err, schedule.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%s not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
		return nil, uc.mapScheduleErr(err)
	}

	// 3. Эффективная длительность: запрошенная или исходная
	duration := req.DurationMinutes
	if duration == 0 {
		duration = original.DurationMinutes()
	}

	// 4. Рабочее окно на новую дату
	window, open := uc.windows.For(req.NewDate)
	if !open {
		uc.logger.Warn("RescheduleAppointment: closed on %s", req.NewDate.Format(domain.DateFormat))
		return nil, ErrDayClosed
	}

	// 5. Новый слот должен целиком помещаться в рабочее окно
	if err := validateWithinWindow(window, req.NewStartTime, duration); err != nil {
		uc.logger.Warn("RescheduleAppointment: window validation failed: %v", err)
		return nil, err
	}

	// 6. Строим кандидата в бизнес-зоне времени
	start, err := req.NewStartTime.At(req.NewDate, uc.windows.Location())
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to build slot start: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot start: %v", ErrInternal, err)
	}
	candidate := domain.NewSlotCandidate(start, duration)

	// 7. Новое начало приема не должно быть в прошлом
	if err := validateNotInPast(candidate.Start, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RescheduleAppointment: %v", err)
		return nil, err
	}

	newAppt := domain.Appointment{
		CalendarID:   req.CalendarID,
		Start:        candidate.Start,
		End:          candidate.End,
		PatientName:  original.PatientName,
		PatientEmail: original.PatientEmail,
		PatientPhone: original.PatientPhone,
		ServiceType:  original.ServiceType,
		Notes:        original.Notes,
	}

	// 8. Перепроверка, создание и удаление под замком календаря.
	// Исходная запись исключается из проверки конфликта: сдвиг приема
	// на пересекающееся с ним самим время - валидный перенос.
	var created *domain.Appointment
	var staleWarning *string
	err = uc.locker.Do(req.CalendarID, func() error {
		free, err := uc.scheduleService.IsStillFree(ctx, req.CalendarID, candidate, original.ID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: conflict check failed: %v", err)
			return uc.mapScheduleErr(err)
		}
		if !free {
			uc.logger.Warn("RescheduleAppointment: slot %s-%s is already taken",
				candidate.Start.Format(domain.TimeFormat), candidate.End.Format(domain.TimeFormat))
			return ErrSlotConflict
		}

		created, err = uc.scheduleService.CreateAppointment(ctx, newAppt)
		if err != nil {
			// Исходная запись не тронута, у пациента остается старое время
			uc.logger.Error("RescheduleAppointment: failed to create new appointment: %v", err)
			return uc.mapScheduleErr(err)
		}

		if err := uc.scheduleService.DeleteAppointment(ctx, req.CalendarID, original.ID); err != nil {
			if errors.Is(err, schedule.ErrAppointmentNotFound) {
				uc.logger.Info("RescheduleAppointment: original appointment id=%s already absent", original.ID)
				return nil
			}
			uc.logger.Error("RescheduleAppointment: new appointment id=%s created, but failed to delete original id=%s: %v",
				created.ID, original.ID, err)
			staleWarning = ptr.Ptr(fmt.Sprintf(
				"original appointment %s could not be removed and may still occupy the calendar", original.ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled id=%s -> id=%s", original.ID, created.ID)

	return &Response{
		ID:                      created.ID,
		PreviousID:              original.ID,
		CalendarID:              created.CalendarID,
		Date:                    req.NewDate,
		StartTime:               types.NewTimeString(created.Start.In(uc.windows.Location())),
		EndTime:                 types.NewTimeString(created.End.In(uc.windows.Location())),
		Start:                   created.Start,
		End:                     created.End,
		DurationMinutes:         duration,
		PatientName:             created.PatientName,
		PatientEmail:            created.PatientEmail,
		PatientPhone:            created.PatientPhone,
		ServiceType:             created.ServiceType,
		Notes:                   created.Notes,
		StaleAppointmentWarning: staleWarning,
	}, nil
}

// mapScheduleErr переводит ошибки сервиса расписания в ошибки usecase
func (uc *UseCase) mapScheduleErr(err error) error {
	if errors.Is(err, schedule.ErrUnavailable) || errors.Is(err, schedule.ErrTimeout) {
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
