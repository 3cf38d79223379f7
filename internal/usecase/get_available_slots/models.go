package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса доступных слотов на дату
type Request struct {
	CalendarID      string           // ID календаря
	Date            time.Time        // Дата (без времени)
	RangeStart      types.TimeString // Начало диапазона поиска (опционально, по умолчанию открытие)
	RangeEnd        types.TimeString // Конец диапазона поиска (опционально, по умолчанию закрытие)
	DurationMinutes int              // Длительность приема; 0 = значение по умолчанию
	StepMinutes     int              // Шаг перебора; 0 = равен длительности
}

// Slot доступный слот в ответе
type Slot struct {
	Start     time.Time        // Начало слота
	End       time.Time        // Конец слота
	StartTime types.TimeString // Время начала ("10:00")
	EndTime   types.TimeString // Время конца ("11:00")
}

// Response модель ответа со списком доступных слотов
type Response struct {
	CalendarID      string    // ID календаря
	Date            time.Time // Дата
	DurationMinutes int       // Эффективная длительность приема
	Slots           []Slot    // Слоты в порядке времени начала
}
