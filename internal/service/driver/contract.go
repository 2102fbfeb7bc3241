//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"fastfare/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetByFleetID(ctx context.Context, fleetID int64) ([]entities.Driver, error)

	Assign(ctx context.Context, id int64) (*entities.Driver, error)
	Release(ctx context.Context, id int64) (*entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
