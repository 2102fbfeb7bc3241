//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=confirmation_test
package confirmation

import (
	"context"

	"fastfare/internal/entities"
)

type ShipmentRepository interface {
	GetByToken(ctx context.Context, tokenType entities.HandoffTokenType, token string) (*entities.Shipment, error)
	UpdateStatus(ctx context.Context, transition entities.ShipmentTransition) (*entities.Shipment, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	TryAssign(ctx context.Context, id int64) (*entities.Driver, error)
	Release(ctx context.Context, id int64) (*entities.Driver, error)
}

type Notifier interface {
	ShipmentStatusChanged(ctx context.Context, shipmentEntity *entities.Shipment)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
