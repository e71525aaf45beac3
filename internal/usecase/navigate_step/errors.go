package navigate_step

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("navigate_step: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("navigate_step: access denied")

	// ErrInvalidInput возвращается при неизвестном направлении перехода
	ErrInvalidInput = errors.New("navigate_step: invalid input data")

	// ErrValidation возвращается, когда поля текущего шага не прошли проверку
	ErrValidation = errors.New("navigate_step: step validation failed")

	// ErrOutOfRange возвращается при попытке выйти за первый или последний шаг
	ErrOutOfRange = errors.New("navigate_step: step out of range")

	// ErrConflict возвращается, когда черновик изменён параллельным запросом
	ErrConflict = errors.New("navigate_step: draft was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("navigate_step: internal error")
)
