package inventoryservice

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("inventoryservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("inventoryservice client: invalid response")

	// ErrUnexpectedStatus возвращается при неуспешном HTTP статусе ответа
	ErrUnexpectedStatus = errors.New("inventoryservice client: unexpected status")

	// ErrMissingRedirectTarget возвращается, когда успешный ответ на создание
	// бронирования не содержит WhatsApp ссылку. Фатально для этой попытки
	// бронирования - никакого тихого fallback
	ErrMissingRedirectTarget = errors.New("inventoryservice client: booking response has no redirect target")
)

// StatusError carries the upstream HTTP status so the caller can show it to
// the user as a retryable failure. Unwraps to ErrUnexpectedStatus.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inventoryservice client: unexpected status code %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
