package shipment_booking

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
	ProcessBookingEvent(ctx context.Context, event entities.BookingEvent) error
}
