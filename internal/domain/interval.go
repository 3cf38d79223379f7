package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BusyInterval represents an occupied time range on a calendar.
// Invariant after NormalizeIntervals: Start < End, intervals are sorted
// by Start and pairwise non-overlapping.
type BusyInterval struct {
	Start         time.Time
	End           time.Time
	SourceEventID string
}

// Overlaps returns true if the interval strictly overlaps [start, end).
// Touching boundaries do not count as an overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// Gap represents a maximal free time range within a business window
type Gap struct {
	Start time.Time
	End   time.Time
}

// Duration возвращает длительность промежутка
func (g Gap) Duration() time.Duration {
	return g.End.Sub(g.Start)
}

// BusinessWindow рабочее окно на конкретную дату в бизнес-зоне времени
type BusinessWindow struct {
	Date     time.Time
	Open     types.TimeString
	Close    types.TimeString
	Location *time.Location
}

// Bounds возвращает границы окна как конкретные моменты времени
func (w BusinessWindow) Bounds() (start, end time.Time, err error) {
	start, err = w.Open.At(w.Date, w.Location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = w.Close.At(w.Date, w.Location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// NormalizeIntervals сортирует интервалы по началу и склеивает
// пересекающиеся и смежные (next.Start <= current.End).
// Интервалы с нулевой или отрицательной длительностью отбрасываются.
// Исходный слайс не модифицируется.
func NormalizeIntervals(intervals []BusyInterval) []BusyInterval {
	filtered := make([]BusyInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start.Before(iv.End) {
			filtered = append(filtered, iv)
		}
	}
	if len(filtered) == 0 {
		return filtered
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Start.Before(filtered[j].Start)
	})

	merged := make([]BusyInterval, 0, len(filtered))
	current := filtered[0]
	for _, next := range filtered[1:] {
		// Смежные интервалы тоже склеиваются, чтобы между ними
		// не появлялся пустой "свободный" промежуток
		if !next.Start.After(current.End) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}

// FreeGaps вычисляет свободные промежутки внутри [windowStart, windowEnd)
// как дополнение к занятым интервалам. busy должен быть нормализован
// (NormalizeIntervals). Интервалы, частично выходящие за окно,
// учитываются только в границах окна.
func FreeGaps(busy []BusyInterval, windowStart, windowEnd time.Time) []Gap {
	gaps := make([]Gap, 0, len(busy)+1)
	if !windowStart.Before(windowEnd) {
		return gaps
	}

	cursor := windowStart
	for _, iv := range busy {
		if !iv.Overlaps(windowStart, windowEnd) {
			continue
		}

		start := iv.Start
		if start.Before(windowStart) {
			start = windowStart
		}
		if cursor.Before(start) {
			gaps = append(gaps, Gap{Start: cursor, End: start})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}

	if cursor.Before(windowEnd) {
		gaps = append(gaps, Gap{Start: cursor, End: windowEnd})
	}

	return gaps
}
