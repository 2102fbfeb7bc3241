package notification

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"fastfare/internal/entities"
	"fastfare/pkg/logger"
)

const (
	eventBooked        = "shipment.booked"
	eventStatusChanged = "shipment.status.changed"
)

// Gateway публикует уведомления в Kafka по принципу fire-and-forget:
// сбой публикации логируется и считается в метрике, но никогда не
// откатывает переход отправки.
type Gateway struct {
	producer sarama.SyncProducer
	topic    string
	log      gatewayLogger
}

func New(log gatewayLogger, producer sarama.SyncProducer, topic string) *Gateway {
	gatewayLog := log.With(
		logger.NewField("topic", topic),
	)

	return &Gateway{
		producer: producer,
		topic:    topic,
		log:      gatewayLog,
	}
}

func (g *Gateway) ShipmentBooked(_ context.Context, shipmentEntity *entities.Shipment) {
	g.publish(eventBooked, shipmentEntity)
}

func (g *Gateway) ShipmentStatusChanged(_ context.Context, shipmentEntity *entities.Shipment) {
	g.publish(eventStatusChanged, shipmentEntity)
}

func (g *Gateway) publish(event string, shipmentEntity *entities.Shipment) {
	if shipmentEntity == nil {
		return
	}

	payload, err := json.Marshal(message{
		ShipmentID:    shipmentEntity.ShipmentID,
		Status:        shipmentEntity.Status.String(),
		PickupToken:   shipmentEntity.PickupToken,
		DeliveryToken: shipmentEntity.DeliveryToken,
		PickupEmail:   shipmentEntity.PickupDetails.Email,
		DeliveryEmail: shipmentEntity.DeliveryDetails.Email,
	})
	if err != nil {
		NotificationPublishTotal.WithLabelValues(event, "marshal_error").Inc()
		g.log.Error("failed to marshal notification",
			logger.NewField("event", event),
			logger.NewField("shipment", shipmentEntity.ShipmentID),
			logger.NewField("error", err),
		)
		return
	}

	_, _, err = g.producer.SendMessage(&sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(shipmentEntity.ShipmentID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		NotificationPublishTotal.WithLabelValues(event, "error").Inc()
		g.log.Error("failed to publish notification",
			logger.NewField("event", event),
			logger.NewField("shipment", shipmentEntity.ShipmentID),
			logger.NewField("error", err),
		)
		return
	}

	NotificationPublishTotal.WithLabelValues(event, "ok").Inc()
}
