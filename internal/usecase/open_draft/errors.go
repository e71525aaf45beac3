package open_draft

import "errors"

var (
	// ErrBookingNotFound возвращается, когда редактируемое бронирование не найдено
	ErrBookingNotFound = errors.New("open_draft: booking not found")

	// ErrUnauthorized возвращается, когда API отказал в доступе к бронированию
	ErrUnauthorized = errors.New("open_draft: unauthorized access")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("open_draft: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("open_draft: internal error")
)
