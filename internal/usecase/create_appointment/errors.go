package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается при дате приема в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDayClosed возвращается, когда клиника закрыта в указанную дату
	ErrDayClosed = errors.New("create_appointment: closed on this date")

	// ErrOutsideBusinessHours возвращается, когда слот не помещается в рабочее окно
	ErrOutsideBusinessHours = errors.New("create_appointment: slot is outside business hours")

	// ErrSlotConflict возвращается, когда слот уже занят в календаре
	ErrSlotConflict = errors.New("create_appointment: slot is already taken")

	// ErrCalendarUnavailable возвращается, когда удаленный календарь недоступен
	ErrCalendarUnavailable = errors.New("create_appointment: calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
