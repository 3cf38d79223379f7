package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SlotRequest запрос на подбор слотов внутри диапазона одного дня
type SlotRequest struct {
	Date            time.Time        // Дата (без времени)
	RangeStart      types.TimeString // Начало диапазона поиска
	RangeEnd        types.TimeString // Конец диапазона поиска
	DurationMinutes int              // Длительность приема в минутах
	StepMinutes     int              // Шаг перебора; 0 = равен длительности
}

// Step возвращает эффективный шаг перебора
func (r SlotRequest) Step() int {
	if r.StepMinutes <= 0 {
		return r.DurationMinutes
	}
	return r.StepMinutes
}

// SlotCandidate конкретный кандидат на бронирование
type SlotCandidate struct {
	Start time.Time
	End   time.Time
}

// NewSlotCandidate строит кандидата по началу и длительности
func NewSlotCandidate(start time.Time, durationMinutes int) SlotCandidate {
	return SlotCandidate{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// GenerateCandidates перебирает кандидатов внутри свободных промежутков.
// Для каждого промежутка старты идут с шагом stepMinutes от его начала,
// пока кандидат целиком помещается в промежуток. Промежутки упорядочены
// и не пересекаются, поэтому конкатенация сохраняет глобальный порядок
// по времени. Чистая функция от своих аргументов.
func GenerateCandidates(gaps []Gap, durationMinutes, stepMinutes int) []SlotCandidate {
	if durationMinutes <= 0 {
		return nil
	}
	if stepMinutes <= 0 {
		stepMinutes = durationMinutes
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	var candidates []SlotCandidate
	for _, gap := range gaps {
		for start := gap.Start; !start.Add(duration).After(gap.End); start = start.Add(step) {
			candidates = append(candidates, SlotCandidate{
				Start: start,
				End:   start.Add(duration),
			})
		}
	}
	return candidates
}
