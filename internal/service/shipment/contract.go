//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"fastfare/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentEntity entities.Shipment) (*entities.Shipment, error)

	GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Shipment, error)
	ListByOwnerID(ctx context.Context, ownerID int64) ([]entities.Shipment, error)
	ListByDriverID(ctx context.Context, driverID int64) ([]entities.Shipment, error)

	UpdateStatus(ctx context.Context, transition entities.ShipmentTransition) (*entities.Shipment, error)
	CancelPendingOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type DriverService interface {
	Release(ctx context.Context, id int64) (*entities.Driver, error)
}

type TokenFactory interface {
	IssueTokens() (pickupToken, deliveryToken string, err error)
	NewShipmentID() (string, error)
}

// Notifier сторонний канал уведомлений, best-effort: реализация сама
// логирует сбои публикации, откатывать переход из-за них нельзя.
type Notifier interface {
	ShipmentBooked(ctx context.Context, shipmentEntity *entities.Shipment)
	ShipmentStatusChanged(ctx context.Context, shipmentEntity *entities.Shipment)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
