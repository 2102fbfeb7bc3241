package driver

import "fastfare/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:            d.ID,
		FleetID:       d.FleetID,
		Name:          d.Name,
		Status:        entities.DriverStatusType(d.Status),
		CurrentOrders: d.CurrentOrders,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
