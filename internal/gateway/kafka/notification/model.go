package notification

// message контракт уведомления для booking-платформы: идентификатор
// отправки, текущий статус, токены для QR-кодов и контактные адреса.
type message struct {
	ShipmentID    string `json:"shipmentId"`
	Status        string `json:"status"`
	PickupToken   string `json:"pickupToken"`
	DeliveryToken string `json:"deliveryToken"`
	PickupEmail   string `json:"pickupEmail"`
	DeliveryEmail string `json:"deliveryEmail"`
}
