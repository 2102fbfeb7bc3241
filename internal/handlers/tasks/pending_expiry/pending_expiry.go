package pending_expiry

import (
	"context"
	"time"

	"fastfare/pkg/logger"
)

type Service interface {
	CancelExpiredPending(ctx context.Context) (int64, error)
}

type PendingExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPendingExpiry(log logger.Logger, service Service, interval time.Duration) *PendingExpiry {
	return &PendingExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PendingExpiry) TTL() time.Duration {
	return p.interval
}

func (p *PendingExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	rowsAffected, err := p.service.CancelExpiredPending(ctxWithTimeout)

	if rowsAffected > 0 {
		p.log.With(
			logger.NewField("expired_shipments", rowsAffected),
		).Info("pending expiry")
	}

	return err
}

func (p *PendingExpiry) Info() string {
	return "pending expiry"
}
