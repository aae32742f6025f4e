package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipment/internal/entities"
	"shipment/internal/gateway/delhivery"
	"shipment/internal/gateway/kafka/shipment_events"
	"shipment/internal/handlers/rest/label_get"
	"shipment/internal/handlers/rest/serviceability_get"
	"shipment/internal/handlers/rest/shipment_create_post"
	"shipment/internal/handlers/rest/shipment_get"
	"shipment/internal/handlers/rest/shipment_manage_delete"
	"shipment/internal/handlers/rest/shipment_manage_put"
	"shipment/internal/handlers/rest/shipment_tracking_get"
	"shipment/internal/handlers/rest/warehouse_post"
	"shipment/internal/handlers/rest/warehouses_get"
	"shipment/internal/handlers/rest/waybills_post"
	"shipment/internal/handlers/tasks/reservation_expiry"
	"shipment/internal/handlers/tasks/tracking_refresh"
	"shipment/internal/handlers/tasks/waybill_replenish"
	"shipment/internal/pkg/config"
	"shipment/internal/pkg/factory/delivery_estimate"
	"shipment/internal/pkg/factory/order_reaction"
	orderRepo "shipment/internal/repository/order"
	settingsRepo "shipment/internal/repository/settings"
	shipmentRepo "shipment/internal/repository/shipment"
	warehouseRepo "shipment/internal/repository/warehouse"
	waybillRepo "shipment/internal/repository/waybill"
	orderService "shipment/internal/service/order"
	shipmentService "shipment/internal/service/shipment"
	warehouseService "shipment/internal/service/warehouse"
	waybillService "shipment/internal/service/waybill"
	"shipment/pkg/background"
	"shipment/pkg/logger"
	"shipment/pkg/querier"
	"shipment/pkg/retrier"
	"shipment/pkg/retrier/backoff_adapter"
	"shipment/pkg/scheduler"
	"shipment/pkg/tx"
)

type (
	ReservationExpiryInterval time.Duration
)

// повтор транзакции при конфликте сериализации
const txMaxAttempts = 3

// ретраи транспортных сбоев перевозчика при фоновом опросе трекинга
const (
	trackingRetryInitialInterval = 500 * time.Millisecond
	trackingRetryMaxInterval     = 5 * time.Second
	trackingRetryMaxElapsedTime  = 20 * time.Second
	trackingRetryRandomization   = 0.5
	trackingRetryMultiplier      = 2
	trackingRetryMaxRetries      = 4
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceWarehouse  ServiceWarehouse
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_create_post.Service
	shipment_get.Service
	shipment_tracking_get.Service
	shipment_manage_put.Service
	shipment_manage_delete.Service
	waybills_post.Service
	serviceability_get.Service
	label_get.Service
}

type ServiceWarehouse interface {
	warehouses_get.Service
	warehouse_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

type WaybillWorkerApp struct {
	Scheduler *scheduler.Scheduler
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithMaxAttempts(txMaxAttempts))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideWaybillRepository(querier *querier.Querier) *waybillRepo.Repository {
	return waybillRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWarehouseRepository(querier *querier.Querier) *warehouseRepo.Repository {
	return warehouseRepo.New(querier)
}

func provideSettingsRepository(querier *querier.Querier) *settingsRepo.Repository {
	return settingsRepo.New(querier)
}

func provideCarrierGateway(log logger.Logger, cfg *config.Config) *delhivery.Gateway {
	return delhivery.New(delhivery.Config{
		BaseURL:    cfg.Delhivery.BaseURL(),
		Token:      cfg.Delhivery.Token,
		ClientName: cfg.Delhivery.ClientName,
		Timeout:    cfg.Delhivery.Timeout,
	}, log)
}

func provideShipmentEventsPublisher(producer sarama.SyncProducer, cfg *config.Config) *shipment_events.Publisher {
	return shipment_events.New(producer, cfg.Kafka.ShipmentEventsTopic)
}

func provideTrackingRetrier(log logger.Logger) *backoff_adapter.Retrier {
	retryLog := log.With(logger.NewField("component", "tracking-retrier"))

	return backoff_adapter.New(retrier.Config{
		InitialInterval: trackingRetryInitialInterval,
		MaxInterval:     trackingRetryMaxInterval,
		MaxElapsedTime:  trackingRetryMaxElapsedTime,
		Randomization:   trackingRetryRandomization,
		Multiplier:      trackingRetryMultiplier,
		MaxRetries:      trackingRetryMaxRetries,
		ShouldRetry:     delhivery.IsRetryable,
		Notify: func(err error, next time.Duration) {
			retryLog.With(
				logger.NewField("error", err),
				logger.NewField("next_in", next),
			).Debug("carrier tracking call failed, retrying")
		},
	})
}

func provideServiceWaybill(
	repository waybillService.Repository,
	gateway waybillService.CarrierGateway,
	cfg *config.Config,
) *waybillService.Service {
	return waybillService.New(repository, gateway, waybillService.Config{
		MinStock:       cfg.WaybillPool.MinStock,
		BatchSize:      cfg.WaybillPool.BatchSize,
		ReservationTTL: cfg.WaybillPool.ReservationTTL,
	})
}

func provideShipmentDefaults(cfg *config.Config) entities.ShipmentSettings {
	return entities.ShipmentSettings{
		DefaultWeightGrams:  cfg.Shipment.DefaultWeightGrams,
		DefaultLengthCm:     cfg.Shipment.DefaultLengthCm,
		DefaultBreadthCm:    cfg.Shipment.DefaultBreadthCm,
		DefaultHeightCm:     cfg.Shipment.DefaultHeightCm,
		LeadTimeDays:        cfg.Shipment.LeadTimeDays,
		DefaultHSNCode:      cfg.Shipment.DefaultHSNCode,
		DefaultShippingMode: entities.ShippingModeType(cfg.Shipment.DefaultShippingMode),
	}
}

func provideServiceShipment(
	log logger.Logger,
	repository shipmentService.Repository,
	orderRepository shipmentService.OrderRepository,
	warehouseRepository shipmentService.WarehouseRepository,
	settingsRepository shipmentService.SettingsRepository,
	waybillPool shipmentService.WaybillPool,
	gateway shipmentService.CarrierGateway,
	publisher shipmentService.EventPublisher,
	estimateFactory shipmentService.DeliveryEstimateFactory,
	retrier shipmentService.Retrier,
	txManager shipmentService.TxManager,
	defaults entities.ShipmentSettings,
) *shipmentService.Service {
	return shipmentService.New(
		log.With(logger.NewField("component", "shipment-service")),
		shipmentService.Deps{
			Repository:          repository,
			OrderRepository:     orderRepository,
			WarehouseRepository: warehouseRepository,
			SettingsRepository:  settingsRepository,
			WaybillPool:         waybillPool,
			Gateway:             gateway,
			Publisher:           publisher,
			EstimateFactory:     estimateFactory,
			Retrier:             retrier,
			TxManager:           txManager,
		},
		defaults,
	)
}

func provideServiceWarehouse(
	repository warehouseService.Repository,
	gateway warehouseService.CarrierGateway,
) *warehouseService.Service {
	return warehouseService.New(repository, gateway)
}

func provideOrderReactions(log logger.Logger, shipmentService orderService.ShipmentService) *order_reaction.Table {
	return order_reaction.New(log, shipmentService)
}

func provideOrderService(
	orderRepository orderService.OrderRepository,
	reactions orderService.Reactions,
) *orderService.Service {
	return orderService.New(orderRepository, reactions)
}

func provideDeliveryEstimateFactory() *delivery_estimate.DeliveryEstimateFactory {
	return delivery_estimate.New()
}

func provideReservationExpiryInterval(cfg *config.Config) ReservationExpiryInterval {
	return ReservationExpiryInterval(cfg.Tasks.ReservationExpiryInterval)
}

func provideReservationExpiryTask(
	log logger.Logger,
	waybillService reservation_expiry.Service,
	interval ReservationExpiryInterval,
) *reservation_expiry.ReservationExpiry {
	return reservation_expiry.NewReservationExpiry(log, waybillService, time.Duration(interval))
}

func provideTaskList(
	reservationExpiryTask *reservation_expiry.ReservationExpiry,
) []background.Task {
	return []background.Task{
		reservationExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideWaybillReplenishJob(
	log logger.Logger,
	waybillService waybill_replenish.Service,
	cfg *config.Config,
) *waybill_replenish.WaybillReplenish {
	return waybill_replenish.NewWaybillReplenish(log, waybillService, cfg.Worker.ReplenishSchedule)
}

func provideTrackingRefreshJob(
	log logger.Logger,
	shipmentService tracking_refresh.Service,
	cfg *config.Config,
) *tracking_refresh.TrackingRefresh {
	return tracking_refresh.NewTrackingRefresh(log, shipmentService, cfg.Worker.TrackingSchedule, cfg.Worker.TrackingBatchSize)
}

// provideScheduler задачи регистрируются сразу, запуск за вызывающим.
func provideScheduler(
	log logger.Logger,
	cfg *config.Config,
	replenish *waybill_replenish.WaybillReplenish,
	refresh *tracking_refresh.TrackingRefresh,
) (*scheduler.Scheduler, error) {
	s := scheduler.New(log, cfg.Worker.JobTimeout)
	if err := s.Register(replenish, refresh); err != nil {
		return nil, err
	}
	return s, nil
}
