package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CalendarID == "" {
		return fmt.Errorf("%w: calendarID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 {
		if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	if req.StepMinutes < 0 {
		return fmt.Errorf("%w: stepMinutes must not be negative", ErrInvalidInput)
	}

	if !req.RangeStart.IsZero() {
		if err := req.RangeStart.Validate(); err != nil {
			return fmt.Errorf("%w: invalid rangeStart format: %v", ErrInvalidInput, err)
		}
	}

	if !req.RangeEnd.IsZero() {
		if err := req.RangeEnd.Validate(); err != nil {
			return fmt.Errorf("%w: invalid rangeEnd format: %v", ErrInvalidInput, err)
		}
	}

	if !req.RangeStart.IsZero() && !req.RangeEnd.IsZero() && !req.RangeStart.IsBefore(req.RangeEnd) {
		return fmt.Errorf("%w: rangeStart must be before rangeEnd", ErrInvalidInput)
	}

	return nil
}
