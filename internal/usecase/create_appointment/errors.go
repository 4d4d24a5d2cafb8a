package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("appointment date is in the past")

	// ErrClosed возвращается, когда барбершоп закрыт в указанную дату
	ErrClosed = errors.New("closed on this date")

	// ErrSlotNotAvailable возвращается, когда запрошенное время не входит
	// в список свободных слотов (занято, пересекается с перерывом,
	// не попадает в сетку или нарушает отсечку по текущему времени)
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
