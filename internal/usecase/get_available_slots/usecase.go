package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case подбора доступных слотов на дату
type UseCase struct {
	scheduleService ScheduleService
	windows         WindowProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleService ScheduleService, windows WindowProvider, logger Logger) *UseCase {
	return &UseCase{
		scheduleService: scheduleService,
		windows:         windows,
		logger:          logger,
	}
}

// Execute выполняет use case подбора доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: calendar=%s, date=%s, duration=%d, step=%d",
		req.CalendarID, req.Date.Format(domain.DateFormat), req.DurationMinutes, req.StepMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Эффективная длительность приема
	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.windows.DefaultDurationMinutes()
	}

	// 3. Рабочее окно на дату; закрытый день - пустой список, не ошибка
	window, open := uc.windows.For(req.Date)
	if !open {
		uc.logger.Info("GetAvailableSlots: calendar=%s is closed on %s",
			req.CalendarID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, duration), nil
	}

	// 4. Сужаем окно до запрошенного диапазона
	window = clipWindow(window, req.RangeStart, req.RangeEnd)
	if !window.Open.IsBefore(window.Close) {
		uc.logger.Info("GetAvailableSlots: requested range is outside business hours on %s",
			req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, duration), nil
	}

	// 5. Свободные промежутки внутри окна
	gaps, err := uc.scheduleService.FreeGaps(ctx, req.CalendarID, window)
	if err != nil {
		if errors.Is(err, schedule.ErrUnavailable) || errors.Is(err, schedule.ErrTimeout) {
			uc.logger.Error("GetAvailableSlots: calendar unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to compute free gaps: %v", err)
		return nil, fmt.Errorf("%w: failed to compute free gaps: %v", ErrInternal, err)
	}

	// 6. Генерируем кандидатов внутри промежутков
	candidates := domain.GenerateCandidates(gaps, duration, req.StepMinutes)

	slots := make([]Slot, 0, len(candidates))
	for _, c := range candidates {
		slots = append(slots, Slot{
			Start:     c.Start,
			End:       c.End,
			StartTime: types.NewTimeString(c.Start.In(uc.windows.Location())),
			EndTime:   types.NewTimeString(c.End.In(uc.windows.Location())),
		})
	}

	uc.logger.Info("GetAvailableSlots: calendar=%s, date=%s, found %d slots",
		req.CalendarID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		CalendarID:      req.CalendarID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

// emptyResponse строит ответ без слотов
func (uc *UseCase) emptyResponse(req *Request, duration int) *Response {
	return &Response{
		CalendarID:      req.CalendarID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           []Slot{},
	}
}

// clipWindow сужает рабочее окно до запрошенного диапазона времени
func clipWindow(window domain.BusinessWindow, rangeStart, rangeEnd types.TimeString) domain.BusinessWindow {
	if !rangeStart.IsZero() && rangeStart.IsAfter(window.Open) {
		window.Open = rangeStart
	}
	if !rangeEnd.IsZero() && rangeEnd.IsBefore(window.Close) {
		window.Close = rangeEnd
	}
	return window
}
