package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSlotConflict возвращается, когда слот уже занят
	ErrSlotConflict = errors.New("slot is already taken")

	// ErrBulkUnavailable возвращается, когда bulk-эндпоинт доступности
	// недоступен (нет backend или backend не ответил) - вызывающий
	// переходит на пересчёт по дням
	ErrBulkUnavailable = errors.New("bulk availability summary unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments service: internal error")
)
