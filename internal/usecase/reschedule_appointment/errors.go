package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInvalidDate возвращается при новой дате приема в прошлом
	ErrInvalidDate = errors.New("reschedule_appointment: invalid appointment date")

	// ErrAppointmentNotFound возвращается, когда исходная запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrDayClosed возвращается, когда клиника закрыта в новую дату
	ErrDayClosed = errors.New("reschedule_appointment: closed on this date")

	// ErrOutsideBusinessHours возвращается, когда новый слот не помещается в рабочее окно
	ErrOutsideBusinessHours = errors.New("reschedule_appointment: slot is outside business hours")

	// ErrSlotConflict возвращается, когда новый слот уже занят в календаре
	ErrSlotConflict = errors.New("reschedule_appointment: slot is already taken")

	// ErrCalendarUnavailable возвращается, когда удаленный календарь недоступен
	ErrCalendarUnavailable = errors.New("reschedule_appointment: calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
