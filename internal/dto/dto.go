// Package dto содержит JSON-контракты REST-поверхности.
// Контракты поддерживаются вручную: camelCase поля, как их шлет
// и ожидает booking-платформа.
package dto

import "time"

type HandoffPoint struct {
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"contactNumber"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Shipment struct {
	ShipmentID       string       `json:"shipmentId"`
	OwnerID          int64        `json:"ownerId"`
	LogisticClientID *int64       `json:"logisticClientId,omitempty"`
	DriverID         *int64       `json:"driverId,omitempty"`
	PickupToken      string       `json:"pickupToken"`
	DeliveryToken    string       `json:"deliveryToken"`
	Status           string       `json:"status"`
	PickupDetails    HandoffPoint `json:"pickupDetails"`
	DeliveryDetails  HandoffPoint `json:"deliveryDetails"`
	Size             Dimensions   `json:"size"`
	Quantity         int64        `json:"quantity"`
	Weight           float64      `json:"weight"`
	NetWeight        float64      `json:"netWeight"`
	Price            float64      `json:"price"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

type ShipmentBookRequest struct {
	OwnerID         int64        `json:"ownerId"`
	PickupDetails   HandoffPoint `json:"pickupDetails"`
	DeliveryDetails HandoffPoint `json:"deliveryDetails"`
	Size            Dimensions   `json:"size"`
	Quantity        int64        `json:"quantity"`
	Weight          float64      `json:"weight"`
	NetWeight       float64      `json:"netWeight"`
	Price           float64      `json:"price"`
}

type ShipmentConfirmRequest struct {
	ShipmentID string `json:"shipmentId"`
	DriverID   int64  `json:"driverId"`
	FleetID    int64  `json:"fleetId"`
}

// ShipmentScanRequest сырой скан QR-кода в формате
// sid=<shipmentId>&token=<token> плюс идентификатор сканирующего водителя.
type ShipmentScanRequest struct {
	Payload  string `json:"payload"`
	DriverID int64  `json:"driverId"`
}

type ShipmentCancelRequest struct {
	ShipmentID string `json:"shipmentId"`
}

type ShipmentRejectRequest struct {
	ShipmentID string `json:"shipmentId"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type Driver struct {
	ID            int64  `json:"id"`
	FleetID       int64  `json:"fleetId"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	CurrentOrders int64  `json:"currentOrders"`
}
