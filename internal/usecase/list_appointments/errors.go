package list_appointments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_appointments: invalid input data")

	// ErrCalendarUnavailable возвращается, когда удаленный календарь недоступен
	ErrCalendarUnavailable = errors.New("list_appointments: calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_appointments: internal error")
)
