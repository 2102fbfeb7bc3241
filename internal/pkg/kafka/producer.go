package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"fastfare/internal/pkg/config"
	"fastfare/pkg/logger"
)

// NewSyncProducer создает синхронный producer и проверяет соединение
// с брокерами тем же retry-пингом, что и consumer.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	// SyncProducer требует Return.Successes
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3

	producerLog := log.With(
		logger.NewField("brokers", brokers),
	)

	err = pingKafka(ctx, producerLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return producer, nil
}
