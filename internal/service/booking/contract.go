//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"fastfare/internal/entities"
)

type ShipmentService interface {
	Book(ctx context.Context, booking entities.ShipmentBooking) (*entities.Shipment, error)
	Cancel(ctx context.Context, shipmentID string) (*entities.Shipment, error)
}

type (
	ExecuteFn      func(ctx context.Context, event entities.BookingEvent) error
	HandlerFactory interface {
		GetHandler(kind entities.BookingEventKind) (ExecuteFn, error)
	}
)
