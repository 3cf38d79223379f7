package cancel_appointment

// Request модель запроса на отмену записи
type Request struct {
	CalendarID    string  // ID календаря
	AppointmentID string  // ID записи (идентификатор события календаря)
	Reason        *string // Причина отмены (опционально)
}

// Response модель ответа на отмену записи
type Response struct {
	AppointmentID string // ID отмененной записи
	AlreadyGone   bool   // Запись отсутствовала в календаре на момент отмены
}
