package entities

import "time"

type Driver struct {
	ID            int64
	FleetID       int64
	Name          string
	Status        DriverStatusType
	CurrentOrders int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverOnDuty    DriverStatusType = "on-duty"
)

func (t DriverStatusType) String() string {
	return string(t)
}
