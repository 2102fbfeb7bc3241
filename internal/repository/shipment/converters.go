package shipment

import "fastfare/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}
	return &entities.Shipment{
		ID:               s.ID,
		ShipmentID:       s.ShipmentID,
		OwnerID:          s.OwnerID,
		LogisticClientID: s.LogisticClientID,
		DriverID:         s.DriverID,
		PickupToken:      s.PickupToken,
		DeliveryToken:    s.DeliveryToken,
		Status:           entities.ShipmentStatusType(s.Status),
		PickupDetails: entities.HandoffPoint{
			Email:         s.PickupEmail,
			Address:       s.PickupAddress,
			ContactNumber: s.PickupContactNumber,
			Latitude:      s.PickupLatitude,
			Longitude:     s.PickupLongitude,
		},
		DeliveryDetails: entities.HandoffPoint{
			Email:         s.DeliveryEmail,
			Address:       s.DeliveryAddress,
			ContactNumber: s.DeliveryContactNumber,
			Latitude:      s.DeliveryLatitude,
			Longitude:     s.DeliveryLongitude,
		},
		Size: entities.Dimensions{
			Length: s.SizeLength,
			Width:  s.SizeWidth,
			Height: s.SizeHeight,
		},
		Quantity:  s.Quantity,
		Weight:    s.Weight,
		NetWeight: s.NetWeight,
		Price:     s.Price,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromDomain(shipmentEntity *entities.Shipment) *ShipmentDB {
	if shipmentEntity == nil {
		return nil
	}
	return &ShipmentDB{
		ID:                    shipmentEntity.ID,
		ShipmentID:            shipmentEntity.ShipmentID,
		OwnerID:               shipmentEntity.OwnerID,
		LogisticClientID:      shipmentEntity.LogisticClientID,
		DriverID:              shipmentEntity.DriverID,
		PickupToken:           shipmentEntity.PickupToken,
		DeliveryToken:         shipmentEntity.DeliveryToken,
		Status:                shipmentEntity.Status.String(),
		PickupEmail:           shipmentEntity.PickupDetails.Email,
		PickupAddress:         shipmentEntity.PickupDetails.Address,
		PickupContactNumber:   shipmentEntity.PickupDetails.ContactNumber,
		PickupLatitude:        shipmentEntity.PickupDetails.Latitude,
		PickupLongitude:       shipmentEntity.PickupDetails.Longitude,
		DeliveryEmail:         shipmentEntity.DeliveryDetails.Email,
		DeliveryAddress:       shipmentEntity.DeliveryDetails.Address,
		DeliveryContactNumber: shipmentEntity.DeliveryDetails.ContactNumber,
		DeliveryLatitude:      shipmentEntity.DeliveryDetails.Latitude,
		DeliveryLongitude:     shipmentEntity.DeliveryDetails.Longitude,
		SizeLength:            shipmentEntity.Size.Length,
		SizeWidth:             shipmentEntity.Size.Width,
		SizeHeight:            shipmentEntity.Size.Height,
		Quantity:              shipmentEntity.Quantity,
		Weight:                shipmentEntity.Weight,
		NetWeight:             shipmentEntity.NetWeight,
		Price:                 shipmentEntity.Price,
		CreatedAt:             shipmentEntity.CreatedAt,
		UpdatedAt:             shipmentEntity.UpdatedAt,
	}
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}
