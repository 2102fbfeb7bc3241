//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notificationGateway "fastfare/internal/gateway/kafka/notification"
	drivers_get "fastfare/internal/handlers/rest/drivers_get"
	shipment_book_post "fastfare/internal/handlers/rest/shipment_book_post"
	shipment_cancel_post "fastfare/internal/handlers/rest/shipment_cancel_post"
	shipment_confirm_post "fastfare/internal/handlers/rest/shipment_confirm_post"
	shipment_get "fastfare/internal/handlers/rest/shipment_get"
	shipment_reject_post "fastfare/internal/handlers/rest/shipment_reject_post"
	shipment_scan_post "fastfare/internal/handlers/rest/shipment_scan_post"
	shipments_get "fastfare/internal/handlers/rest/shipments_get"
	"fastfare/internal/handlers/tasks/pending_expiry"
	"fastfare/internal/pkg/config"
	"fastfare/internal/pkg/factory/booking_handle"
	"fastfare/internal/pkg/factory/handoff_token"

	driverRepo "fastfare/internal/repository/driver"
	shipmentRepo "fastfare/internal/repository/shipment"
	bookingService "fastfare/internal/service/booking"
	confirmationService "fastfare/internal/service/confirmation"
	driverService "fastfare/internal/service/driver"
	shipmentService "fastfare/internal/service/shipment"

	"fastfare/pkg/background"
	"fastfare/pkg/logger"
	"fastfare/pkg/querier"
	"fastfare/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ExpiryInterval time.Duration
	MaxPendingAge  time.Duration
)

type Application struct {
	ServiceShipment     ServiceShipment
	ServiceConfirmation ServiceConfirmation
	ServiceDriver       ServiceDriver
	BackgroundWorkers   *background.Worker
}

type ServiceShipment interface {
	shipment_book_post.Service
	shipment_get.Service
	shipments_get.Service
	shipment_cancel_post.Service
	shipment_reject_post.Service
}

type ServiceConfirmation interface {
	shipment_confirm_post.Service
	shipment_scan_post.Service
}

type ServiceDriver interface {
	drivers_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExpiryInterval,
		provideMaxPendingAge,

		provideDriverRepository,
		provideShipmentRepository,
		provideNotificationGateway,
		handoff_token.New,

		provideServiceDriver,
		provideServiceShipment,
		provideServiceConfirmation,

		providePendingExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceConfirmation), new(*confirmationService.Confirmation)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(confirmationService.ShipmentRepository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(confirmationService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(shipmentService.TokenFactory), new(*handoff_token.TokenFactory)),
		wire.Bind(new(shipmentService.Notifier), new(*notificationGateway.Gateway)),
		wire.Bind(new(confirmationService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(confirmationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(pending_expiry.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	BookingService *bookingService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-booking)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMaxPendingAge,

		provideDriverRepository,
		provideShipmentRepository,
		provideNotificationGateway,
		handoff_token.New,

		provideServiceDriver,
		provideServiceShipment,
		provideKindHandlerFactory,
		provideBookingService,

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(shipmentService.TokenFactory), new(*handoff_token.TokenFactory)),
		wire.Bind(new(shipmentService.Notifier), new(*notificationGateway.Gateway)),
		wire.Bind(new(bookingService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(bookingService.HandlerFactory), new(*booking_handle.KindHandlerFactory)),

		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideNotificationGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.Gateway {
	return notificationGateway.New(log, producer, cfg.Kafka.NotificationTopic)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, txManager)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	driverSvc shipmentService.DriverService,
	tokenFactory shipmentService.TokenFactory,
	notifier shipmentService.Notifier,
	txManager shipmentService.TxManager,
	maxPendingAge MaxPendingAge,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		driverSvc,
		tokenFactory,
		notifier,
		txManager,
		time.Duration(maxPendingAge),
	)
}

func provideServiceConfirmation(
	shipmentRepository confirmationService.ShipmentRepository,
	driverSvc confirmationService.DriverService,
	notifier confirmationService.Notifier,
	txManager confirmationService.TxManager,
) *confirmationService.Confirmation {
	return confirmationService.New(shipmentRepository, driverSvc, notifier, txManager)
}

func provideExpiryInterval(cfg *config.Config) ExpiryInterval {
	return ExpiryInterval(cfg.Tasks.PendingExpiryInterval)
}

func provideMaxPendingAge(cfg *config.Config) MaxPendingAge {
	return MaxPendingAge(cfg.Tasks.MaxPendingAge)
}

func provideKindHandlerFactory(shipmentSvc bookingService.ShipmentService) *booking_handle.KindHandlerFactory {
	return booking_handle.NewKindHandlerFactory(shipmentSvc)
}

func provideBookingService(handlerFactory bookingService.HandlerFactory) *bookingService.Service {
	return bookingService.New(handlerFactory)
}

func providePendingExpiryTask(
	log logger.Logger,
	shipmentSvc pending_expiry.Service,
	interval ExpiryInterval,
) *pending_expiry.PendingExpiry {
	return pending_expiry.NewPendingExpiry(log, shipmentSvc, time.Duration(interval))
}

func provideTaskList(
	pendingExpiryTask *pending_expiry.PendingExpiry,
) []background.Task {
	return []background.Task{
		pendingExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
