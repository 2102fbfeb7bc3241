package driver

import (
	"context"
	"fmt"

	"fastfare/internal/entities"
)

// Driver учетная книга водителей: доступность и счетчик активных заказов.
// Все мутации однострочные атомарные апдейты, поэтому две конкурирующие
// доставки одного водителя не теряют инкремент/декремент.
type Driver struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Driver {
	return &Driver{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}

	driverEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return driverEntity, nil
}

func (s *Driver) GetFleetDrivers(ctx context.Context, fleetID int64) ([]entities.Driver, error) {
	if !isValidFleetID(fleetID) {
		return nil, ErrInvalidFleetID
	}

	drivers, err := s.repository.GetByFleetID(ctx, fleetID)
	if err != nil {
		return nil, fmt.Errorf("get fleet drivers: %w", err)
	}

	return drivers, nil
}

// TryAssign атомарно ставит водителя on-duty и увеличивает счетчик на 1.
// Лимита нагрузки нет: назначение всегда проходит, если водитель существует.
func (s *Driver) TryAssign(ctx context.Context, id int64) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}

	driverEntity, err := s.repository.Assign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("assign driver: %w", err)
	}

	return driverEntity, nil
}

// Release атомарно уменьшает счетчик на 1; при нуле водитель снова available.
// Декремент на нулевом счетчике не ужимается молча, а возвращает
// ErrLedgerInconsistent: такой вызов означает баг выше по стеку.
func (s *Driver) Release(ctx context.Context, id int64) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}

	driverEntity, err := s.repository.Release(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("release driver: %w", err)
	}

	return driverEntity, nil
}
