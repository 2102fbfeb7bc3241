package entities

type BookingEventKind string

const (
	BookingCreated   BookingEventKind = "booked"
	BookingCancelled BookingEventKind = "cancelled"
)

func (k BookingEventKind) String() string {
	return string(k)
}

type BookingEvent struct {
	Kind       BookingEventKind
	ShipmentID string
	Booking    *ShipmentBooking
}
