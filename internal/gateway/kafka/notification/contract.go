package notification

import "fastfare/pkg/logger"

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
