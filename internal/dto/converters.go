package dto

import "fastfare/internal/entities"

func FromShipmentEntity(shipmentEntity *entities.Shipment) Shipment {
	return Shipment{
		ShipmentID:       shipmentEntity.ShipmentID,
		OwnerID:          shipmentEntity.OwnerID,
		LogisticClientID: shipmentEntity.LogisticClientID,
		DriverID:         shipmentEntity.DriverID,
		PickupToken:      shipmentEntity.PickupToken,
		DeliveryToken:    shipmentEntity.DeliveryToken,
		Status:           shipmentEntity.Status.String(),
		PickupDetails: HandoffPoint{
			Email:         shipmentEntity.PickupDetails.Email,
			Address:       shipmentEntity.PickupDetails.Address,
			ContactNumber: shipmentEntity.PickupDetails.ContactNumber,
			Latitude:      shipmentEntity.PickupDetails.Latitude,
			Longitude:     shipmentEntity.PickupDetails.Longitude,
		},
		DeliveryDetails: HandoffPoint{
			Email:         shipmentEntity.DeliveryDetails.Email,
			Address:       shipmentEntity.DeliveryDetails.Address,
			ContactNumber: shipmentEntity.DeliveryDetails.ContactNumber,
			Latitude:      shipmentEntity.DeliveryDetails.Latitude,
			Longitude:     shipmentEntity.DeliveryDetails.Longitude,
		},
		Size: Dimensions{
			Length: shipmentEntity.Size.Length,
			Width:  shipmentEntity.Size.Width,
			Height: shipmentEntity.Size.Height,
		},
		Quantity:  shipmentEntity.Quantity,
		Weight:    shipmentEntity.Weight,
		NetWeight: shipmentEntity.NetWeight,
		Price:     shipmentEntity.Price,
		CreatedAt: shipmentEntity.CreatedAt,
		UpdatedAt: shipmentEntity.UpdatedAt,
	}
}

func FromShipmentEntities(shipmentEntities []entities.Shipment) []Shipment {
	shipmentDTOs := make([]Shipment, len(shipmentEntities))
	for i := range shipmentEntities {
		shipmentDTOs[i] = FromShipmentEntity(&shipmentEntities[i])
	}
	return shipmentDTOs
}

func (r *ShipmentBookRequest) ToBookingEntity() entities.ShipmentBooking {
	return entities.ShipmentBooking{
		OwnerID: r.OwnerID,
		PickupDetails: entities.HandoffPoint{
			Email:         r.PickupDetails.Email,
			Address:       r.PickupDetails.Address,
			ContactNumber: r.PickupDetails.ContactNumber,
			Latitude:      r.PickupDetails.Latitude,
			Longitude:     r.PickupDetails.Longitude,
		},
		DeliveryDetails: entities.HandoffPoint{
			Email:         r.DeliveryDetails.Email,
			Address:       r.DeliveryDetails.Address,
			ContactNumber: r.DeliveryDetails.ContactNumber,
			Latitude:      r.DeliveryDetails.Latitude,
			Longitude:     r.DeliveryDetails.Longitude,
		},
		Size: entities.Dimensions{
			Length: r.Size.Length,
			Width:  r.Size.Width,
			Height: r.Size.Height,
		},
		Quantity:  r.Quantity,
		Weight:    r.Weight,
		NetWeight: r.NetWeight,
		Price:     r.Price,
	}
}

func FromDriverEntities(driverEntities []entities.Driver) []Driver {
	driverDTOs := make([]Driver, len(driverEntities))
	for i, driverEntity := range driverEntities {
		driverDTOs[i] = Driver{
			ID:            driverEntity.ID,
			FleetID:       driverEntity.FleetID,
			Name:          driverEntity.Name,
			Status:        driverEntity.Status.String(),
			CurrentOrders: driverEntity.CurrentOrders,
		}
	}
	return driverDTOs
}
