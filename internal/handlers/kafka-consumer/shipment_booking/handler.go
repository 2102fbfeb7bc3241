package shipment_booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"fastfare/internal/entities"
	bookingservice "fastfare/internal/service/booking"
	shipmentservice "fastfare/internal/service/shipment"
	"fastfare/pkg/logger"
)

type Handler struct {
	bookingService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, bookingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		bookingService:           bookingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("shipment.booking: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shipment.booking: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event bookingEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.booking handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("kind", event.Kind),
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.booking processing")

	err = h.bookingService.ProcessBookingEvent(ctx, toDomainEvent(&event))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.booking handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, bookingservice.ErrMissingBooking) ||
			errors.Is(err, bookingservice.ErrMissingShipmentID) ||
			errors.Is(err, shipmentservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.booking handler incomplete event payload")

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.booking handler shipment not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.booking handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("shipment.booking: processed")

	sess.MarkMessage(message, "")
	return false
}

func toDomainEvent(event *bookingEvent) entities.BookingEvent {
	domainEvent := entities.BookingEvent{
		Kind:       entities.BookingEventKind(event.Kind),
		ShipmentID: event.ShipmentID,
	}

	if domainEvent.Kind == entities.BookingCreated {
		domainEvent.Booking = &entities.ShipmentBooking{
			OwnerID: event.OwnerID,
			PickupDetails: entities.HandoffPoint{
				Email:         event.PickupDetails.Email,
				Address:       event.PickupDetails.Address,
				ContactNumber: event.PickupDetails.ContactNumber,
				Latitude:      event.PickupDetails.Latitude,
				Longitude:     event.PickupDetails.Longitude,
			},
			DeliveryDetails: entities.HandoffPoint{
				Email:         event.DeliveryDetails.Email,
				Address:       event.DeliveryDetails.Address,
				ContactNumber: event.DeliveryDetails.ContactNumber,
				Latitude:      event.DeliveryDetails.Latitude,
				Longitude:     event.DeliveryDetails.Longitude,
			},
			Size: entities.Dimensions{
				Length: event.Size.Length,
				Width:  event.Size.Width,
				Height: event.Size.Height,
			},
			Quantity:  event.Quantity,
			Weight:    event.Weight,
			NetWeight: event.NetWeight,
			Price:     event.Price,
		}
	}

	return domainEvent
}
