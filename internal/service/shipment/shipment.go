package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastfare/internal/entities"
)

// maxTokenAttempts сколько раз перевыпускаем токены при коллизии
// уникального индекса, прежде чем сдаться.
const maxTokenAttempts = 5

type Shipment struct {
	repository    Repository
	driverService DriverService
	tokenFactory  TokenFactory
	notifier      Notifier
	txManager     TxManager
	maxPendingAge time.Duration
}

func New(
	repository Repository,
	driverService DriverService,
	tokenFactory TokenFactory,
	notifier Notifier,
	txManager TxManager,
	maxPendingAge time.Duration,
) *Shipment {
	return &Shipment{
		repository:    repository,
		driverService: driverService,
		tokenFactory:  tokenFactory,
		notifier:      notifier,
		txManager:     txManager,
		maxPendingAge: maxPendingAge,
	}
}

// Book создает отправку в статусе pending с парой одноразовых токенов.
// Коллизии уникальности токенов считаем возможными и повторяем выпуск.
func (s *Shipment) Book(ctx context.Context, booking entities.ShipmentBooking) (*entities.Shipment, error) {
	if err := validateBooking(booking); err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()

	var created *entities.Shipment
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		shipmentID, err := s.tokenFactory.NewShipmentID()
		if err != nil {
			return nil, fmt.Errorf("issue shipment id: %w", err)
		}

		pickupToken, deliveryToken, err := s.tokenFactory.IssueTokens()
		if err != nil {
			return nil, fmt.Errorf("issue handoff tokens: %w", err)
		}

		created, err = s.repository.Create(ctx, entities.Shipment{
			ShipmentID:      shipmentID,
			OwnerID:         booking.OwnerID,
			PickupToken:     pickupToken,
			DeliveryToken:   deliveryToken,
			Status:          entities.ShipmentPending,
			PickupDetails:   booking.PickupDetails,
			DeliveryDetails: booking.DeliveryDetails,
			Size:            booking.Size,
			Quantity:        booking.Quantity,
			Weight:          booking.Weight,
			NetWeight:       booking.NetWeight,
			Price:           booking.Price,
			CreatedAt:       createdAt,
		})
		if err != nil {
			if errors.Is(err, ErrTokenConflict) {
				continue
			}
			return nil, fmt.Errorf("create shipment: %w", err)
		}
		break
	}
	if created == nil {
		return nil, fmt.Errorf("issue unique tokens after %d attempts: %w", maxTokenAttempts, ErrTokenConflict)
	}

	s.notifier.ShipmentBooked(ctx, created)

	return created, nil
}

func (s *Shipment) GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	if !isValidShipmentID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	shipmentEntity, err := s.repository.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	return shipmentEntity, nil
}

func (s *Shipment) ListByOwner(ctx context.Context, ownerID int64) ([]entities.Shipment, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidOwnerID
	}

	shipments, err := s.repository.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list shipments by owner: %w", err)
	}

	return shipments, nil
}

func (s *Shipment) ListByDriver(ctx context.Context, driverID int64) ([]entities.Shipment, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	shipments, err := s.repository.ListByDriverID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list shipments by driver: %w", err)
	}

	return shipments, nil
}

// Reject переводит pending-отправку в rejected.
func (s *Shipment) Reject(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	if !isValidShipmentID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	rejected, err := s.repository.UpdateStatus(ctx, entities.ShipmentTransition{
		ShipmentID: shipmentID,
		From:       entities.ShipmentPending,
		To:         entities.ShipmentRejected,
	})
	if err != nil {
		return nil, fmt.Errorf("reject shipment: %w", err)
	}

	s.notifier.ShipmentStatusChanged(ctx, rejected)

	return rejected, nil
}

// Cancel переводит любую нетерминальную отправку в cancelled.
// Если водитель уже назначен, его счетчик освобождается в той же транзакции:
// либо продвигаются обе записи, либо ни одной.
func (s *Shipment) Cancel(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	if !isValidShipmentID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	var cancelled *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByShipmentID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipmentEntity.Status.IsTerminal() {
			return ErrShipmentTerminal
		}

		cancelled, err = s.repository.UpdateStatus(ctx, entities.ShipmentTransition{
			ShipmentID:  shipmentID,
			From:        shipmentEntity.Status,
			To:          entities.ShipmentCancelled,
			ClearDriver: shipmentEntity.DriverID != nil,
		})
		if err != nil {
			return fmt.Errorf("cancel shipment: %w", err)
		}

		if shipmentEntity.DriverID != nil {
			_, err = s.driverService.Release(ctx, *shipmentEntity.DriverID)
			if err != nil {
				return fmt.Errorf("release driver: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.ShipmentStatusChanged(ctx, cancelled)

	return cancelled, nil
}

// CancelExpiredPending фоновая зачистка: pending-отправки старше
// maxPendingAge отменяются пачкой, водителей у них нет по определению.
func (s *Shipment) CancelExpiredPending(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.CancelPendingOlderThan(ctx, s.maxPendingAge)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("pending expiry timed out: %w", err)
		}
		return 0, fmt.Errorf("pending expiry: %w", err)
	}

	return rowsAffected, nil
}
