package submit_draft

import (
	"errors"
	"fmt"
)

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("submit_draft: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_draft: access denied")

	// ErrValidation возвращается, когда поля черновика не прошли проверку
	ErrValidation = errors.New("submit_draft: validation failed")

	// ErrConflict возвращается, когда черновик уже отправляется или изменён параллельно
	ErrConflict = errors.New("submit_draft: draft was modified concurrently")

	// ErrUnauthorized возвращается, когда API отказал в доступе
	ErrUnauthorized = errors.New("submit_draft: unauthorized access")

	// ErrRejected возвращается, когда API отклонил бронирование
	ErrRejected = errors.New("submit_draft: booking rejected")

	// ErrBookingNotFound возвращается, когда редактируемое бронирование удалено в API
	ErrBookingNotFound = errors.New("submit_draft: booking not found")

	// ErrUpstream возвращается, когда API недоступен или ответил некорректно
	ErrUpstream = errors.New("submit_draft: booking api failure")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_draft: internal error")
)

// RejectedError отказ API с сообщением сервера
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRejected, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
