package update_draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("update_draft: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("update_draft: access denied")

	// ErrInvalidInput возвращается при некорректных значениях полей
	ErrInvalidInput = errors.New("update_draft: invalid input data")

	// ErrConflict возвращается, когда черновик изменён параллельным запросом
	ErrConflict = errors.New("update_draft: draft was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_draft: internal error")
)
