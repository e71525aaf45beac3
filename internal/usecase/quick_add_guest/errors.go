package quick_add_guest

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("quick_add_guest: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("quick_add_guest: access denied")

	// ErrValidation возвращается, когда форма гостя не прошла проверку
	ErrValidation = errors.New("quick_add_guest: validation failed")

	// ErrConflict возвращается, когда черновик отправляется или постоянно меняется параллельно
	ErrConflict = errors.New("quick_add_guest: draft was modified concurrently")

	// ErrUnauthorized возвращается, когда API отказал в доступе
	ErrUnauthorized = errors.New("quick_add_guest: unauthorized access")

	// ErrRejected возвращается, когда API отклонил гостя (например, email занят)
	ErrRejected = errors.New("quick_add_guest: guest rejected")

	// ErrUpstream возвращается, когда API недоступен или ответил некорректно
	ErrUpstream = errors.New("quick_add_guest: guest api failure")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quick_add_guest: internal error")
)
