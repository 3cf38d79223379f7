package find_next_available

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_next_available: invalid input data")

	// ErrNoSlotFound возвращается, когда в пределах бюджета дней нет свободного слота
	ErrNoSlotFound = errors.New("find_next_available: no available slot within scan budget")

	// ErrCalendarUnavailable возвращается, когда удаленный календарь недоступен
	ErrCalendarUnavailable = errors.New("find_next_available: calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_next_available: internal error")
)
