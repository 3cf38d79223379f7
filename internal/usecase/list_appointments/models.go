package list_appointments

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса списка записей календаря
type Request struct {
	CalendarID string    // ID календаря
	From       time.Time // Начало диапазона; нулевое значение = сейчас
	To         time.Time // Конец диапазона; нулевое значение = From + горизонт поиска
}

// Appointment запись в ответе
type Appointment struct {
	ID              string           // ID записи
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

// Response модель ответа со списком записей
type Response struct {
	CalendarID   string        // ID календаря
	From         time.Time     // Эффективное начало диапазона
	To           time.Time     // Эффективный конец диапазона
	Appointments []Appointment // Записи в порядке времени начала
}
