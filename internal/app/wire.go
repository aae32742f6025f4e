//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipment/internal/gateway/delhivery"
	"shipment/internal/gateway/kafka/shipment_events"
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
	"shipment/pkg/logger"
	"shipment/pkg/retrier/backoff_adapter"
	"shipment/pkg/tx"
)

// shipmentSet общий граф сервиса отгрузок для HTTP и воркеров.
var shipmentSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideWaybillRepository,
	provideShipmentRepository,
	provideOrderRepository,
	provideWarehouseRepository,
	provideSettingsRepository,

	provideCarrierGateway,
	provideShipmentEventsPublisher,
	provideTrackingRetrier,
	provideDeliveryEstimateFactory,
	provideShipmentDefaults,

	provideServiceWaybill,
	provideServiceShipment,

	wire.Bind(new(waybillService.Repository), new(*waybillRepo.Repository)),
	wire.Bind(new(waybillService.CarrierGateway), new(*delhivery.Gateway)),

	wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
	wire.Bind(new(shipmentService.OrderRepository), new(*orderRepo.Repository)),
	wire.Bind(new(shipmentService.WarehouseRepository), new(*warehouseRepo.Repository)),
	wire.Bind(new(shipmentService.SettingsRepository), new(*settingsRepo.Repository)),
	wire.Bind(new(shipmentService.WaybillPool), new(*waybillService.Service)),
	wire.Bind(new(shipmentService.CarrierGateway), new(*delhivery.Gateway)),
	wire.Bind(new(shipmentService.EventPublisher), new(*shipment_events.Publisher)),
	wire.Bind(new(shipmentService.DeliveryEstimateFactory), new(*delivery_estimate.DeliveryEstimateFactory)),
	wire.Bind(new(shipmentService.Retrier), new(*backoff_adapter.Retrier)),
	wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
)

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
		shipmentSet,

		provideServiceWarehouse,

		provideReservationExpiryInterval,
		provideReservationExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServiceWarehouse), new(*warehouseService.Service)),

		wire.Bind(new(warehouseService.Repository), new(*warehouseRepo.Repository)),
		wire.Bind(new(warehouseService.CarrierGateway), new(*delhivery.Gateway)),

		wire.Bind(new(reservation_expiry.Service), new(*waybillService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		shipmentSet,

		provideOrderReactions,
		provideOrderService,

		wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ShipmentService), new(*shipmentService.Service)),
		wire.Bind(new(orderService.Reactions), new(*order_reaction.Table)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

// InitializeWaybillWorkerApp для воркера пула накладных (cmd/worker-waybill-pool)
func InitializeWaybillWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*WaybillWorkerApp, error) {
	wire.Build(
		shipmentSet,

		provideWaybillReplenishJob,
		provideTrackingRefreshJob,
		provideScheduler,

		wire.Bind(new(waybill_replenish.Service), new(*waybillService.Service)),
		wire.Bind(new(tracking_refresh.Service), new(*shipmentService.Service)),

		wire.Struct(new(WaybillWorkerApp), "*"),
	)
	return nil, nil
}
