package pmsapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается, когда ресурс не найден (404)
	ErrNotFound = errors.New("pmsapi client: resource not found")

	// ErrForbidden возвращается при отказе в доступе (403)
	ErrForbidden = errors.New("pmsapi client: unauthorized access")

	// ErrRejected возвращается, когда API отклонил данные (400, 422)
	ErrRejected = errors.New("pmsapi client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pmsapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("pmsapi client: invalid response")
)

// APIError ошибка с сообщением, которое вернул сервер
type APIError struct {
	StatusCode int
	Message    string
	Kind       error // одна из ошибок пакета: ErrNotFound, ErrForbidden, ErrRejected, ErrInvalidResponse
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", e.Kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// ServerMessage извлекает сообщение сервера из ошибки клиента
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
