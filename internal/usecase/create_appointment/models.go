package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CalendarID      string           // ID календаря
	Date            time.Time        // Дата приема (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность приема; 0 = значение по умолчанию
	PatientName     string           // Имя пациента
	PatientEmail    string           // Email пациента
	PatientPhone    *string          // Телефон пациента (опционально)
	ServiceType     string           // Тип услуги
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string           // ID записи (идентификатор события календаря)
	CalendarID      string           // ID календаря
	Date            time.Time        // Дата приема
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	Start           time.Time        // Начало приема
	End             time.Time        // Конец приема
	DurationMinutes int              // Длительность в минутах
	PatientName     string           // Имя пациента
	PatientEmail    string           // Email пациента
	PatientPhone    *string          // Телефон пациента
	ServiceType     string           // Тип услуги
	Notes           *string          // Заметки
}
