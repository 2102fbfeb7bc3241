//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_scan_post_test
package shipment_scan_post

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
	Scan(ctx context.Context, rawPayload string, driverID int64) (*entities.Shipment, error)
}
