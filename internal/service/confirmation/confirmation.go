package confirmation

import (
	"context"
	"fmt"

	"fastfare/internal/entities"
	"fastfare/internal/service/shipment"
)

// Confirmation оркестрация подтверждения и физической передачи отправки.
// Каждая составная мутация (статус отправки + счетчик водителя) выполняется
// через txManager: фиксируются обе записи или ни одной.
type Confirmation struct {
	shipmentRepository ShipmentRepository
	driverService      DriverService
	notifier           Notifier
	txManager          TxManager
}

func New(
	shipmentRepository ShipmentRepository,
	driverService DriverService,
	notifier Notifier,
	txManager TxManager,
) *Confirmation {
	return &Confirmation{
		shipmentRepository: shipmentRepository,
		driverService:      driverService,
		notifier:           notifier,
		txManager:          txManager,
	}
}

// Confirm принимает pending-отправку от имени логистического клиента:
// проверяет принадлежность водителя автопарку, переводит отправку в confirmed
// и назначает водителя в одной транзакции.
func (s *Confirmation) Confirm(ctx context.Context, shipmentID string, driverID, fleetID int64) (*entities.Shipment, error) {
	if !isValidShipmentID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if !isValidID(fleetID) {
		return nil, ErrInvalidFleetID
	}

	var confirmed *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driverEntity, err := s.driverService.GetDriver(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		if driverEntity.FleetID != fleetID {
			return ErrForeignFleetDriver
		}

		confirmed, err = s.shipmentRepository.UpdateStatus(ctx, entities.ShipmentTransition{
			ShipmentID:       shipmentID,
			From:             entities.ShipmentPending,
			To:               entities.ShipmentConfirmed,
			DriverID:         &driverID,
			LogisticClientID: &fleetID,
		})
		if err != nil {
			return fmt.Errorf("confirm shipment: %w", err)
		}

		if _, err := s.driverService.TryAssign(ctx, driverID); err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return confirmed, nil
}

// Scan обрабатывает скан QR-кода водителем: PCK-токен двигает confirmed в
// in-transit, DEL-токен двигает in-transit в delivered. Токен авторитетен,
// sid из полезной нагрузки лишь сверяется с найденной отправкой. Переход по
// уже использованному токену не проходит CAS по статусу и отклоняется.
func (s *Confirmation) Scan(ctx context.Context, rawPayload string, driverID int64) (*entities.Shipment, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	claimedID, token, err := parseScanPayload(rawPayload)
	if err != nil {
		return nil, err
	}

	// Префикс проверяется до похода в хранилище: чужой префикс это
	// ошибка входных данных, а не отсутствие отправки.
	tokenType, ok := entities.TokenTypeOf(token)
	if !ok {
		return nil, ErrUnknownTokenType
	}

	var scanned *entities.Shipment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.shipmentRepository.GetByToken(ctx, tokenType, token)
		if err != nil {
			return fmt.Errorf("resolve token: %w", err)
		}

		if shipmentEntity.ShipmentID != claimedID {
			return shipment.ErrShipmentNotFound
		}

		if shipmentEntity.DriverID == nil || *shipmentEntity.DriverID != driverID {
			return ErrDriverNotAssigned
		}

		transition := entities.ShipmentTransition{ShipmentID: shipmentEntity.ShipmentID}
		switch tokenType {
		case entities.PickupTokenType:
			transition.From = entities.ShipmentConfirmed
			transition.To = entities.ShipmentInTransit
		case entities.DeliveryTokenType:
			transition.From = entities.ShipmentInTransit
			transition.To = entities.ShipmentDelivered
		}

		scanned, err = s.shipmentRepository.UpdateStatus(ctx, transition)
		if err != nil {
			return fmt.Errorf("apply scan transition: %w", err)
		}

		if tokenType == entities.DeliveryTokenType {
			if _, err := s.driverService.Release(ctx, driverID); err != nil {
				return fmt.Errorf("release driver: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if scanned.Status.IsTerminal() {
		s.notifier.ShipmentStatusChanged(ctx, scanned)
	}

	return scanned, nil
}
