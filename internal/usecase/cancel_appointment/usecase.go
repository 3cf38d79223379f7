package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
)

// UseCase use case для отмены записи на прием
type UseCase struct {
	scheduleService ScheduleService
	locker          Locker
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleService ScheduleService, locker Locker, logger Logger) *UseCase {
	return &UseCase{
		scheduleService: scheduleService,
		locker:          locker,
		logger:          logger,
	}
}

// Execute выполняет use case отмены записи.
// Отмена идемпотентна: отсутствующая запись считается уже отмененной,
// повторный запрос отличается от первого только флагом AlreadyGone.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: calendar=%s, appointment=%s", req.CalendarID, req.AppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Удаляем запись под замком календаря
	alreadyGone := false
	err := uc.locker.Do(req.CalendarID, func() error {
		err := uc.scheduleService.DeleteAppointment(ctx, req.CalendarID, req.AppointmentID)
		if err == nil {
			return nil
		}

		if errors.Is(err, schedule.ErrAppointmentNotFound) {
			// Запись уже отсутствует: фиксируем это отдельно от обычной
			// отмены, но для клиента исход тот же
			uc.logger.Info("CancelAppointment: appointment id=%s already absent", req.AppointmentID)
			alreadyGone = true
			return nil
		}

		if errors.Is(err, schedule.ErrUnavailable) || errors.Is(err, schedule.ErrTimeout) {
			uc.logger.Error("CancelAppointment: calendar unavailable: %v", err)
			return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}

		uc.logger.Error("CancelAppointment: failed to delete appointment id=%s: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
	})
	if err != nil {
		return nil, err
	}

	if !alreadyGone {
		uc.logger.Info("CancelAppointment: successfully cancelled appointment id=%s", req.AppointmentID)
	}

	return &Response{
		AppointmentID: req.AppointmentID,
		AlreadyGone:   alreadyGone,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CalendarID == "" {
		return fmt.Errorf("%w: calendarID is required", ErrInvalidInput)
	}
	if req.AppointmentID == "" {
		return fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}
