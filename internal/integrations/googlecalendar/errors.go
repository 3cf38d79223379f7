package googlecalendar

import "errors"

var (
	// ErrUnavailable возвращается, когда удаленный календарь недоступен
	ErrUnavailable = errors.New("googlecalendar client: upstream unavailable")

	// ErrTimeout возвращается при превышении таймаута вызова API
	ErrTimeout = errors.New("googlecalendar client: upstream timeout")

	// ErrRejected возвращается, когда календарь отклонил запрос (некорректные данные)
	ErrRejected = errors.New("googlecalendar client: upstream rejected request")

	// ErrEventNotFound возвращается, когда событие не найдено в календаре
	ErrEventNotFound = errors.New("googlecalendar client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
