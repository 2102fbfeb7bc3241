package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fastfare/internal/entities"
	"fastfare/internal/repository"
	"fastfare/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, shipment_id, owner_id, logistic_client_id, driver_id,
		pickup_token, delivery_token, status,
		pickup_email, pickup_address, pickup_contact_number, pickup_latitude, pickup_longitude,
		delivery_email, delivery_address, delivery_contact_number, delivery_latitude, delivery_longitude,
		size_length, size_width, size_height, quantity, weight, net_weight, price,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var shipmentModel ShipmentDB
	err := row.Scan(
		&shipmentModel.ID,
		&shipmentModel.ShipmentID,
		&shipmentModel.OwnerID,
		&shipmentModel.LogisticClientID,
		&shipmentModel.DriverID,
		&shipmentModel.PickupToken,
		&shipmentModel.DeliveryToken,
		&shipmentModel.Status,
		&shipmentModel.PickupEmail,
		&shipmentModel.PickupAddress,
		&shipmentModel.PickupContactNumber,
		&shipmentModel.PickupLatitude,
		&shipmentModel.PickupLongitude,
		&shipmentModel.DeliveryEmail,
		&shipmentModel.DeliveryAddress,
		&shipmentModel.DeliveryContactNumber,
		&shipmentModel.DeliveryLatitude,
		&shipmentModel.DeliveryLongitude,
		&shipmentModel.SizeLength,
		&shipmentModel.SizeWidth,
		&shipmentModel.SizeHeight,
		&shipmentModel.Quantity,
		&shipmentModel.Weight,
		&shipmentModel.NetWeight,
		&shipmentModel.Price,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shipmentModel, nil
}

func (r *Repository) Create(ctx context.Context, shipmentEntity entities.Shipment) (*entities.Shipment, error) {
	shipmentModel := FromDomain(&shipmentEntity)

	query := `
		INSERT INTO shipments (shipment_id, owner_id, pickup_token, delivery_token, status,
			pickup_email, pickup_address, pickup_contact_number, pickup_latitude, pickup_longitude,
			delivery_email, delivery_address, delivery_contact_number, delivery_latitude, delivery_longitude,
			size_length, size_width, size_height, quantity, weight, net_weight, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $23)
		RETURNING ` + shipmentColumns

	created, err := scanShipment(r.querier.QueryRow(
		ctx,
		query,
		shipmentModel.ShipmentID,
		shipmentModel.OwnerID,
		shipmentModel.PickupToken,
		shipmentModel.DeliveryToken,
		shipmentModel.Status,
		shipmentModel.PickupEmail,
		shipmentModel.PickupAddress,
		shipmentModel.PickupContactNumber,
		shipmentModel.PickupLatitude,
		shipmentModel.PickupLongitude,
		shipmentModel.DeliveryEmail,
		shipmentModel.DeliveryAddress,
		shipmentModel.DeliveryContactNumber,
		shipmentModel.DeliveryLatitude,
		shipmentModel.DeliveryLongitude,
		shipmentModel.SizeLength,
		shipmentModel.SizeWidth,
		shipmentModel.SizeHeight,
		shipmentModel.Quantity,
		shipmentModel.Weight,
		shipmentModel.NetWeight,
		shipmentModel.Price,
		shipmentModel.CreatedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrTokenConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE shipment_id = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, shipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyshipmentid error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

// GetByToken обратный поиск по уникальному индексу токена, без скана статусов.
func (r *Repository) GetByToken(ctx context.Context, tokenType entities.HandoffTokenType, token string) (*entities.Shipment, error) {
	tokenColumn := "pickup_token"
	if tokenType == entities.DeliveryTokenType {
		tokenColumn = "delivery_token"
	}

	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE ` + tokenColumn + ` = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbytoken error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) ListByOwnerID(ctx context.Context, ownerID int64) ([]entities.Shipment, error) {
	return r.list(ctx, "owner_id", ownerID)
}

func (r *Repository) ListByDriverID(ctx context.Context, driverID int64) ([]entities.Shipment, error) {
	return r.list(ctx, "driver_id", driverID)
}

func (r *Repository) list(ctx context.Context, column string, id int64) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE ` + column + ` = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		shipmentModel, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		shipmentModels = append(shipmentModels, *shipmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

// UpdateStatus единственная точка мутации машины состояний: compare-and-set
// по паре (shipment_id, from). Ноль строк различается дополнительным чтением:
// отправки нет вовсе либо она уже не в ожидаемом статусе.
func (r *Repository) UpdateStatus(ctx context.Context, transition entities.ShipmentTransition) (*entities.Shipment, error) {
	builder := qb.
		Update("shipments").
		Set("status", transition.To.String())

	// опциональные поля перехода
	if transition.DriverID != nil {
		builder = builder.Set("driver_id", transition.DriverID)
	}
	if transition.LogisticClientID != nil {
		builder = builder.Set("logistic_client_id", transition.LogisticClientID)
	}
	if transition.ClearDriver {
		builder = builder.Set("driver_id", nil)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"shipment_id": transition.ShipmentID, "status": transition.From.String()}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByShipmentID(ctx, transition.ShipmentID); getErr != nil {
				return nil, getErr
			}
			return nil, shipment.ErrUnexpectedStatus
		}

		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) CancelPendingOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	query := `UPDATE shipments
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < NOW() - make_interval(secs => $3)`

	result, err := r.querier.Exec(
		ctx,
		query,
		entities.ShipmentCancelled.String(),
		entities.ShipmentPending.String(),
		age.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository cancelpendingolderthan error: %w", err)
	}

	return result.RowsAffected(), nil
}
