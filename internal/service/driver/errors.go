package driver

import "errors"

var (
	ErrInvalidDriverID = errors.New("invalid driver id")
	ErrInvalidFleetID  = errors.New("invalid fleet id")

	ErrDriverNotFound = errors.New("driver not found")

	// ErrLedgerInconsistent счетчик активных заказов ушел бы в минус,
	// это фатальное нарушение инварианта, а не бизнес-отказ.
	ErrLedgerInconsistent = errors.New("driver ledger inconsistent")
)
