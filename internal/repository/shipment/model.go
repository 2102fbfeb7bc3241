package shipment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type ShipmentDB struct {
	ID                    int64
	ShipmentID            string
	OwnerID               int64
	LogisticClientID      *int64
	DriverID              *int64
	PickupToken           string
	DeliveryToken         string
	Status                string
	PickupEmail           string
	PickupAddress         string
	PickupContactNumber   string
	PickupLatitude        float64
	PickupLongitude       float64
	DeliveryEmail         string
	DeliveryAddress       string
	DeliveryContactNumber string
	DeliveryLatitude      float64
	DeliveryLongitude     float64
	SizeLength            float64
	SizeWidth             float64
	SizeHeight            float64
	Quantity              int64
	Weight                float64
	NetWeight             float64
	Price                 float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
