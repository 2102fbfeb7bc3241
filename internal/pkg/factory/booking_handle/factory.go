package booking_handle

import (
	"context"
	"fmt"

	"fastfare/internal/entities"
	"fastfare/internal/service/booking"
)

type KindHandlerFactory struct {
	shipmentService booking.ShipmentService
}

func NewKindHandlerFactory(shipmentService booking.ShipmentService) *KindHandlerFactory {
	return &KindHandlerFactory{
		shipmentService: shipmentService,
	}
}

func (f *KindHandlerFactory) GetHandler(kind entities.BookingEventKind) (booking.ExecuteFn, error) {
	switch kind {
	case entities.BookingCreated:
		return f.bookedHandler, nil
	case entities.BookingCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", booking.ErrUndefinedEventKind, kind)
	}
}

func (f *KindHandlerFactory) bookedHandler(ctx context.Context, event entities.BookingEvent) error {
	if event.Booking == nil {
		return booking.ErrMissingBooking
	}

	if _, err := f.shipmentService.Book(ctx, *event.Booking); err != nil {
		return fmt.Errorf("book shipment: %w", err)
	}
	return nil
}

func (f *KindHandlerFactory) cancelledHandler(ctx context.Context, event entities.BookingEvent) error {
	if event.ShipmentID == "" {
		return booking.ErrMissingShipmentID
	}

	if _, err := f.shipmentService.Cancel(ctx, event.ShipmentID); err != nil {
		return fmt.Errorf("cancel shipment %s: %w", event.ShipmentID, err)
	}
	return nil
}
