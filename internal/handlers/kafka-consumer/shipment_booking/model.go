package shipment_booking

// bookingEvent сообщение booking-платформы. Для kind=booked заполнена
// полезная нагрузка бронирования, для kind=cancelled достаточно shipmentId.
type bookingEvent struct {
	Kind       string `json:"kind"`
	ShipmentID string `json:"shipmentId"`

	OwnerID         int64        `json:"ownerId"`
	PickupDetails   handoffPoint `json:"pickupDetails"`
	DeliveryDetails handoffPoint `json:"deliveryDetails"`
	Size            dimensions   `json:"size"`
	Quantity        int64        `json:"quantity"`
	Weight          float64      `json:"weight"`
	NetWeight       float64      `json:"netWeight"`
	Price           float64      `json:"price"`
}

type handoffPoint struct {
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"contactNumber"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

type dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
