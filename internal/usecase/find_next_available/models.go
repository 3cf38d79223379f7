package find_next_available

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса поиска ближайшего свободного слота
type Request struct {
	CalendarID      string    // ID календаря
	From            time.Time // Искать начиная с этого момента; нулевое значение = сейчас
	DurationMinutes int       // Длительность приема; 0 = значение по умолчанию
	MaxDaysToScan   int       // Бюджет дней сканирования; 0 = значение из конфигурации
}

// Response модель ответа с ближайшим свободным слотом
type Response struct {
	CalendarID      string           // ID календаря
	Date            time.Time        // Дата найденного слота
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	Start           time.Time        // Начало слота
	End             time.Time        // Конец слота
	DurationMinutes int              // Длительность в минутах
	DaysScanned     int              // Сколько дней просмотрено до находки (включая день находки)
}
