package entities

import "time"

type Shipment struct {
	ID               int64
	ShipmentID       string
	OwnerID          int64
	LogisticClientID *int64
	DriverID         *int64
	PickupToken      string
	DeliveryToken    string
	Status           ShipmentStatusType
	PickupDetails    HandoffPoint
	DeliveryDetails  HandoffPoint
	Size             Dimensions
	Quantity         int64
	Weight           float64
	NetWeight        float64
	Price            float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ShipmentStatusType string

const (
	ShipmentPending   ShipmentStatusType = "pending"
	ShipmentConfirmed ShipmentStatusType = "confirmed"
	ShipmentRejected  ShipmentStatusType = "rejected"
	ShipmentInTransit ShipmentStatusType = "in-transit"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentCancelled ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

func (s ShipmentStatusType) IsTerminal() bool {
	switch s {
	case ShipmentRejected, ShipmentDelivered, ShipmentCancelled:
		return true
	default:
		return false
	}
}

type HandoffPoint struct {
	Email         string
	Address       string
	ContactNumber string
	Latitude      float64
	Longitude     float64
}

type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// ShipmentBooking полезная нагрузка бронирования, поступает от booking-платформы.
type ShipmentBooking struct {
	OwnerID         int64
	PickupDetails   HandoffPoint
	DeliveryDetails HandoffPoint
	Size            Dimensions
	Quantity        int64
	Weight          float64
	NetWeight       float64
	Price           float64
}

// ShipmentTransition описывает один CAS-переход машины состояний.
type ShipmentTransition struct {
	ShipmentID       string
	From             ShipmentStatusType
	To               ShipmentStatusType
	DriverID         *int64
	LogisticClientID *int64
	ClearDriver      bool
}
