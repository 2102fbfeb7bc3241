package shipment

import (
	"strings"

	"fastfare/internal/entities"
)

func isValidShipmentID(shipmentID string) bool {
	return strings.TrimSpace(shipmentID) != ""
}

func validateBooking(booking entities.ShipmentBooking) error {
	if booking.OwnerID <= 0 {
		return ErrInvalidOwnerID
	}

	if booking.Quantity <= 0 ||
		booking.Weight <= 0 ||
		booking.NetWeight <= 0 ||
		booking.Price <= 0 {
		return ErrMissingRequiredFields
	}

	if booking.Size.Length <= 0 ||
		booking.Size.Width <= 0 ||
		booking.Size.Height <= 0 {
		return ErrMissingRequiredFields
	}

	if !isValidHandoffPoint(booking.PickupDetails) || !isValidHandoffPoint(booking.DeliveryDetails) {
		return ErrMissingRequiredFields
	}

	return nil
}

func isValidHandoffPoint(point entities.HandoffPoint) bool {
	return strings.TrimSpace(point.Email) != "" &&
		strings.TrimSpace(point.Address) != "" &&
		strings.TrimSpace(point.ContactNumber) != ""
}
