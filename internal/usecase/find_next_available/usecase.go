package find_next_available

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case поиска ближайшего свободного слота
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

// Execute выполняет use case поиска ближайшего свободного слота.
// Дни сканируются по одному, вперед от точки отсчета. Закрытые дни
// тоже расходуют бюджет сканирования: бюджет ограничивает горизонт
// поиска в календарных днях, а не число обращений к календарю.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextAvailable: calendar=%s, duration=%d, maxDays=%d",
		req.CalendarID, req.DurationMinutes, req.MaxDaysToScan)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindNextAvailable: validation failed: %v", err)
		return nil, err
	}

	// 2. Эффективные параметры поиска
	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.windows.DefaultDurationMinutes()
	}

	maxDays := req.MaxDaysToScan
	if maxDays == 0 {
		maxDays = uc.windows.FindNextDays()
	}
	if maxDays > domain.DefaultScanDaysCap {
		maxDays = domain.DefaultScanDaysCap
	}

	from := req.From
	if from.IsZero() {
		from = uc.timeProvider.Now()
	}
	from = from.In(uc.windows.Location())

	// 3. Сканируем дни вперед от точки отсчета
	for day := 0; day < maxDays; day++ {
		date := from.AddDate(0, 0, day)

		window, open := uc.windows.For(date)
		if !open {
			continue
		}

		gaps, err := uc.scheduleService.FreeGaps(ctx, req.CalendarID, window)
		if err != nil {
			if errors.Is(err, schedule.ErrUnavailable) || errors.Is(err, schedule.ErrTimeout) {
				uc.logger.Error("FindNextAvailable: calendar unavailable on day %d: %v", day, err)
				return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
			}
			uc.logger.Error("FindNextAvailable: failed to compute free gaps on day %d: %v", day, err)
			return nil, fmt.Errorf("%w: failed to compute free gaps: %v", ErrInternal, err)
		}

		// Кандидаты идут с шагом длительности от открытия окна;
		// в первый день отбрасываем уже прошедшие
		for _, c := range domain.GenerateCandidates(gaps, duration, 0) {
			if c.Start.Before(from) {
				continue
			}

			uc.logger.Info("FindNextAvailable: calendar=%s, found slot %s after scanning %d day(s)",
				req.CalendarID, c.Start.Format(time.RFC3339), day+1)

			return &Response{
				CalendarID:      req.CalendarID,
				Date:            window.Date,
				StartTime:       types.NewTimeString(c.Start.In(uc.windows.Location())),
				EndTime:         types.NewTimeString(c.End.In(uc.windows.Location())),
				Start:           c.Start,
				End:             c.End,
				DurationMinutes: duration,
				DaysScanned:     day + 1,
			}, nil
		}
	}

	uc.logger.Warn("FindNextAvailable: calendar=%s, no slot found within %d day(s)", req.CalendarID, maxDays)
	return nil, fmt.Errorf("%w: scanned %d day(s)", ErrNoSlotFound, maxDays)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CalendarID == "" {
		return fmt.Errorf("%w: calendarID is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 {
		if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	if req.MaxDaysToScan < 0 {
		return fmt.Errorf("%w: maxDaysToScan must not be negative", ErrInvalidInput)
	}

	return nil
}
