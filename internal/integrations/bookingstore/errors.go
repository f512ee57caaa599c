package bookingstore

import "errors"

var (
	// ErrTransport возвращается при сетевой ошибке или ответе с кодом вне 2xx
	ErrTransport = errors.New("bookingstore client: transport error")

	// ErrInternal возвращается при внутренних ошибках клиента (построение запроса)
	ErrInternal = errors.New("bookingstore client: internal error")

	// ErrInvalidResponse возвращается, если успешный ответ не удалось разобрать
	ErrInvalidResponse = errors.New("bookingstore client: invalid response")
)
