package confirmation

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidDriverID   = errors.New("invalid driver id")
	ErrInvalidFleetID    = errors.New("invalid fleet id")

	// ErrMalformedScanPayload сырой скан не соответствует формату
	// sid=<shipmentId>&token=<token> ровно с этими двумя ключами.
	ErrMalformedScanPayload = errors.New("malformed scan payload")

	// ErrUnknownTokenType префикс токена не PCK- и не DEL-.
	ErrUnknownTokenType = errors.New("unknown token type")

	// ErrForeignFleetDriver водитель принадлежит другому логистическому клиенту.
	ErrForeignFleetDriver = errors.New("driver belongs to another fleet")

	// ErrDriverNotAssigned сканирующий водитель не назначен на эту отправку.
	ErrDriverNotAssigned = errors.New("driver is not assigned to shipment")
)
