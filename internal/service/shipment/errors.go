package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidOwnerID        = errors.New("invalid owner id")
	ErrInvalidDriverID       = errors.New("invalid driver id")

	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrTokenConflict сгенерированный токен или shipment id уже занят,
	// бронирование повторяет выпуск со свежим суффиксом.
	ErrTokenConflict = errors.New("token already in use")

	// ErrUnexpectedStatus переход машины состояний не прошел guard:
	// отправка существует, но находится не в ожидаемом статусе.
	ErrUnexpectedStatus = errors.New("shipment is in unexpected status")

	ErrShipmentTerminal = errors.New("shipment is in terminal status")
)
