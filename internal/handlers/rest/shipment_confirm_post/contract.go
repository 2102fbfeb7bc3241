//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_confirm_post_test
package shipment_confirm_post

import (
	"context"

	"fastfare/internal/entities"
	"fastfare/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Confirm(ctx context.Context, shipmentID string, driverID, fleetID int64) (*entities.Shipment, error)
}
