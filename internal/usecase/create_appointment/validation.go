package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CalendarID == "" {
		return fmt.Errorf("%w: calendarID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes != 0 {
		if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	if strings.TrimSpace(req.PatientName) == "" {
		return fmt.Errorf("%w: patientName is required", ErrInvalidInput)
	}

	if err := validateEmail(req.PatientEmail); err != nil {
		return err
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateEmail проверяет минимально разумный формат email
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: patientEmail is required", ErrInvalidInput)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Contains(email, " ") {
		return fmt.Errorf("%w: invalid patientEmail format", ErrInvalidInput)
	}
	return nil
}

// validateNotInPast проверяет, что начало приема не в прошлом
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: appointment start is in the past", ErrInvalidDate)
	}
	return nil
}

// validateWithinWindow проверяет, что слот целиком помещается в рабочее окно
func validateWithinWindow(window domain.BusinessWindow, startTime types.TimeString, durationMinutes int) error {
	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: slot crosses midnight", ErrOutsideBusinessHours)
	}

	if startTime.IsBefore(window.Open) || endTime.IsAfter(window.Close) {
		return fmt.Errorf("%w: business hours are %s-%s", ErrOutsideBusinessHours, window.Open, window.Close)
	}

	return nil
}
