package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"fastfare/internal/entities"
	"fastfare/internal/repository"
	"fastfare/internal/service/driver"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, fleet_id, name, status, current_orders, created_at, updated_at
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverModel.ID,
			&driverModel.FleetID,
			&driverModel.Name,
			&driverModel.Status,
			&driverModel.CurrentOrders,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetByFleetID(ctx context.Context, fleetID int64) ([]entities.Driver, error) {
	query := `SELECT id, fleet_id, name, status, current_orders, created_at, updated_at
		FROM drivers
		WHERE fleet_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, fleetID)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbyfleetid error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.FleetID,
			&driverModel.Name,
			&driverModel.Status,
			&driverModel.CurrentOrders,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getbyfleetid error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbyfleetid error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

// Assign инкремент счетчика и перевод в on-duty одним UPDATE:
// конкурирующие назначения сериализуются блокировкой строки.
func (r *Repository) Assign(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `UPDATE drivers
		SET current_orders = current_orders + 1,
			status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, fleet_id, name, status, current_orders, created_at, updated_at`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id, entities.DriverOnDuty.String()).
		Scan(
			&driverModel.ID,
			&driverModel.FleetID,
			&driverModel.Name,
			&driverModel.Status,
			&driverModel.CurrentOrders,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository assign error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

// Release охраняемый декремент: current_orders > 0 в WHERE не дает счетчику
// уйти в минус. Ноль строк на существующем водителе означает рассинхрон
// учетной книги, а не гонку, и возвращается как ErrLedgerInconsistent.
func (r *Repository) Release(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `UPDATE drivers
		SET current_orders = current_orders - 1,
			status = CASE WHEN current_orders - 1 = 0 THEN $2 ELSE $3 END,
			updated_at = NOW()
		WHERE id = $1 AND current_orders > 0
		RETURNING id, fleet_id, name, status, current_orders, created_at, updated_at`

	var driverModel DriverDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		entities.DriverAvailable.String(),
		entities.DriverOnDuty.String(),
	).Scan(
		&driverModel.ID,
		&driverModel.FleetID,
		&driverModel.Name,
		&driverModel.Status,
		&driverModel.CurrentOrders,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, driver.ErrLedgerInconsistent
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, driver.ErrLedgerInconsistent
		}

		return nil, fmt.Errorf("unexpected driver repository release error: %w", err)
	}

	return ToDomain(&driverModel), nil
}
