package bookingbackend

import "errors"

var (
	// ErrNotConfigured возвращается, когда URL backend не задан в конфигурации
	ErrNotConfigured = errors.New("bookingbackend client: backend url is not configured")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("bookingbackend client: appointment not found")

	// ErrSlotConflict возвращается, когда backend отклонил создание из-за занятого слота
	ErrSlotConflict = errors.New("bookingbackend client: slot is already taken")

	// ErrRejected возвращается, когда backend отклонил создание бронирования
	ErrRejected = errors.New("bookingbackend client: appointment rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingbackend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("bookingbackend client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что backend недоступен и доступность считается без учёта
	// существующих бронирований (fail-open)
	ErrServiceDegraded = errors.New("bookingbackend unavailable: graceful degradation applied")
)
