package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Windows поставщик рабочих окон по календарной конфигурации клиники.
// Все даты интерпретируются в бизнес-зоне времени.
type Windows struct {
	hours           config.BusinessHours
	location        *time.Location
	defaultDuration int
	findNextDays    int
}

// NewWindows создает поставщика окон из конфигурации расписания
func NewWindows(cfg config.ScheduleConfig) (*Windows, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	defaultDuration := cfg.DefaultDurationMinutes
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultDurationMinutes
	}
	findNextDays := cfg.FindNextDays
	if findNextDays <= 0 {
		findNextDays = domain.DefaultFindNextDays
	}
	if findNextDays > domain.DefaultScanDaysCap {
		findNextDays = domain.DefaultScanDaysCap
	}

	w := &Windows{
		hours:           cfg.BusinessHours,
		location:        loc,
		defaultDuration: defaultDuration,
		findNextDays:    findNextDays,
	}

	// Валидация окон на этапе старта, а не на каждом запросе
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := cfg.BusinessHours.ForWeekday(wd)
		if day == nil {
			continue
		}
		open, err := types.NewTimeStringFromString(day.Open)
		if err != nil {
			return nil, fmt.Errorf("invalid open time for %s: %w", wd, err)
		}
		closeAt, err := types.NewTimeStringFromString(day.Close)
		if err != nil {
			return nil, fmt.Errorf("invalid close time for %s: %w", wd, err)
		}
		if !open.IsBefore(closeAt) {
			return nil, fmt.Errorf("%w: %s opens at %s, closes at %s", ErrInvalidWindow, wd, open, closeAt)
		}
	}

	return w, nil
}

// Location возвращает бизнес-зону времени
func (w *Windows) Location() *time.Location {
	return w.location
}

// DefaultDurationMinutes возвращает длительность приема по умолчанию
func (w *Windows) DefaultDurationMinutes() int {
	return w.defaultDuration
}

// FindNextDays возвращает бюджет дней для поиска ближайшего слота
func (w *Windows) FindNextDays() int {
	return w.findNextDays
}

// For возвращает рабочее окно на дату. Второе значение false,
// если в этот день недели клиника закрыта.
func (w *Windows) For(date time.Time) (domain.BusinessWindow, bool) {
	day := w.hours.ForWeekday(date.In(w.location).Weekday())
	if day == nil {
		return domain.BusinessWindow{}, false
	}

	// Времена провалидированы в NewWindows
	open, _ := types.NewTimeStringFromString(day.Open)
	closeAt, _ := types.NewTimeStringFromString(day.Close)

	return domain.BusinessWindow{
		Date:     date,
		Open:     open,
		Close:    closeAt,
		Location: w.location,
	}, true
}
