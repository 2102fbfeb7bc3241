package booking

import "errors"

var (
	ErrUndefinedEventKind = errors.New("undefined booking event kind")
	ErrMissingShipmentID  = errors.New("booking event without shipment id")
	ErrMissingBooking     = errors.New("booked event without booking payload")
)
