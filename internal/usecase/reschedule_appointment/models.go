package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	CalendarID      string           // ID календаря
	AppointmentID   string           // ID исходной записи
	NewDate         time.Time        // Новая дата приема (без времени)
	NewStartTime    types.TimeString // Новое время начала
	DurationMinutes int              // Новая длительность; 0 = длительность исходной записи
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID              string           // ID новой записи (старый ID более недействителен)
	PreviousID      string           // ID исходной записи
	CalendarID      string           // ID календаря
	Date            time.Time        // Новая дата приема
	StartTime       types.TimeString // Новое время начала
	EndTime         types.TimeString // Новое время конца
	Start           time.Time        // Начало приема
	End             time.Time        // Конец приема
	DurationMinutes int              // Длительность в минутах
	PatientName     string           // Имя пациента
	PatientEmail    string           // Email пациента
	PatientPhone    *string          // Телефон пациента
	ServiceType     string           // Тип услуги
	Notes           *string          // Заметки

	// StaleAppointmentWarning заполняется, когда новая запись создана,
	// но исходную удалить не удалось: в календаре осталось событие,
	// требующее ручной уборки
	StaleAppointmentWarning *string
}
