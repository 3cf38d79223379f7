package schedule

import "errors"

var (
	// ErrUnavailable удаленный календарь недоступен
	ErrUnavailable = errors.New("service schedule: calendar unavailable")

	// ErrTimeout вызов удаленного календаря не уложился в таймаут
	ErrTimeout = errors.New("service schedule: calendar timeout")

	// ErrRejected удаленный календарь отклонил запрос
	ErrRejected = errors.New("service schedule: calendar rejected request")

	// ErrAppointmentNotFound запись не найдена в календаре
	ErrAppointmentNotFound = errors.New("service schedule: appointment not found")

	// ErrInvalidWindow некорректное рабочее окно (открытие не раньше закрытия)
	ErrInvalidWindow = errors.New("service schedule: invalid business window")
)
