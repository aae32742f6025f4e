package shipment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"shipment/internal/entities"
	"shipment/internal/gateway/delhivery"
	"shipment/pkg/logger"
)

type Service struct {
	log                 logger.Logger
	repository          Repository
	orderRepository     OrderRepository
	warehouseRepository WarehouseRepository
	settingsRepository  SettingsRepository
	waybillPool         WaybillPool
	gateway             CarrierGateway
	publisher           EventPublisher
	estimateFactory     DeliveryEstimateFactory
	retrier             Retrier
	txManager           TxManager

	// настройки из конфига, если в хранилище нет строки shipment_settings
	defaults entities.ShipmentSettings

	trackGroup singleflight.Group
	now        func() time.Time
	newID      func() string
}

type Deps struct {
	Repository          Repository
	OrderRepository     OrderRepository
	WarehouseRepository WarehouseRepository
	SettingsRepository  SettingsRepository
	WaybillPool         WaybillPool
	Gateway             CarrierGateway
	Publisher           EventPublisher
	EstimateFactory     DeliveryEstimateFactory
	Retrier             Retrier
	TxManager           TxManager
}

func New(log logger.Logger, deps Deps, defaults entities.ShipmentSettings) *Service {
	return &Service{
		log:                 log,
		repository:          deps.Repository,
		orderRepository:     deps.OrderRepository,
		warehouseRepository: deps.WarehouseRepository,
		settingsRepository:  deps.SettingsRepository,
		waybillPool:         deps.WaybillPool,
		gateway:             deps.Gateway,
		publisher:           deps.Publisher,
		estimateFactory:     deps.EstimateFactory,
		retrier:             deps.Retrier,
		txManager:           deps.TxManager,
		defaults:            defaults,
		now:                 func() time.Time { return time.Now().UTC() },
		newID:               uuid.NewString,
	}
}

// CreateShipment заказ -> накладные из пула -> манифест у перевозчика -> запись в БД.
// При отказе перевозчика накладные возвращаются в пул, при сбое транспорта списываются:
// неизвестно, успел ли перевозчик их занять.
func (s *Service) CreateShipment(ctx context.Context, req CreateShipmentRequest) (*CreateShipmentResult, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	packageCount, err := packageCountFor(req.ShipmentType, req.PackageCount)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepository.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !orderAllows(req.ShipmentType, order.Status) {
		return nil, fmt.Errorf("%w: %s shipment for order in status %s", ErrOrderStatusNotAllowed, req.ShipmentType, order.Status)
	}

	active, err := s.repository.HasActive(ctx, order.ID, req.ShipmentType)
	if err != nil {
		return nil, fmt.Errorf("check active shipment: %w", err)
	}
	if active {
		return nil, ErrActiveShipmentExists
	}

	warehouse, err := s.warehouseRepository.GetByName(ctx, req.PickupLocation)
	if err != nil {
		return nil, fmt.Errorf("get pickup location: %w", err)
	}
	if !warehouse.Active {
		return nil, ErrWarehouseInactive
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	waybills, err := s.waybillPool.Acquire(ctx, packageCount, req.Actor)
	if err != nil {
		return nil, fmt.Errorf("acquire waybills: %w", err)
	}
	codes := codesOf(waybills)

	now := s.now()
	pkg := resolvePackage(req, order, settings)
	manifest := entities.Manifest{
		OrderID:               order.ID,
		Waybills:              codes,
		PrimaryWaybill:        codes[0],
		Type:                  req.ShipmentType,
		Consignee:             order.Address,
		Package:               pkg,
		ProductDescription:    order.ProductDescription,
		HSNCode:               settings.HSNCodeFor(order.ProductCategory),
		TotalAmount:           order.TotalAmount,
		PickupLocation:        *warehouse,
		OrderDate:             order.CreatedAt,
		ManifestDate:          now,
		EstimatedDeliveryDate: s.estimateFactory.CalculateEndDate(req.ShipmentType, settings.LeadTimeDays, now),
		CustomFields:          req.CustomFields,
	}

	demo := anyDemo(waybills)

	// demo-номера перевозчику неизвестны: манифест не отправляем,
	// отправление сохраняется с флагом demo
	var result *entities.ManifestResult
	if demo {
		result = demoManifestResult(codes)
		s.log.Warn("demo waybills, manifest not sent to carrier",
			logger.NewField("order_id", order.ID),
			logger.NewField("waybills", codes),
		)
	} else {
		result, err = s.gateway.CreateShipment(ctx, manifest)
		if err != nil {
			s.rollbackWaybills(ctx, codes, req.Actor, err)
			return nil, err
		}
	}

	shipment := entities.Shipment{
		ID:                 s.newID(),
		OrderID:            order.ID,
		Waybills:           codes,
		PrimaryWaybill:     manifest.PrimaryWaybill,
		Type:               req.ShipmentType,
		Status:             entities.ShipmentCreated,
		PickupLocation:     warehouse.Name,
		Package:            pkg,
		ProductDescription: order.ProductDescription,
		HSNCode:            manifest.HSNCode,
		Demo:               demo,
		CarrierResponse:    result.Raw,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// пул накладных вне транзакции: отправление у перевозчика уже есть,
	// поэтому сбой списания только логируем и сохраняем отправление
	for _, code := range codes {
		if err := s.waybillPool.Use(ctx, code, order.ID, shipment.ID); err != nil {
			s.log.Error("failed to mark waybill as used",
				logger.NewField("waybill", code),
				logger.NewField("shipment_id", shipment.ID),
				logger.NewField("error", err),
			)
		}
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Create(ctx, shipment); err != nil {
			return fmt.Errorf("save shipment: %w", err)
		}

		shipmentCreated := true
		err := s.orderRepository.UpdateShipmentLink(ctx, entities.OrderModify{
			ID:              &order.ID,
			ShipmentCreated: &shipmentCreated,
			Waybill:         &shipment.PrimaryWaybill,
			ShipmentID:      &shipment.ID,
			ShipmentStatus:  &shipment.Status,
		})
		if err != nil {
			return fmt.Errorf("link shipment to order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.ShipmentEventCreated, &shipment)

	return &CreateShipmentResult{
		WaybillNumbers: codes,
		Shipment:       &shipment,
	}, nil
}

func (s *Service) GetShipmentDetails(ctx context.Context, orderID string) ([]entities.Shipment, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	shipments, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get shipments by order: %w", err)
	}

	for i := range shipments {
		if err := s.attachEvents(ctx, &shipments[i]); err != nil {
			return nil, err
		}
	}
	return shipments, nil
}

func (s *Service) GetShipmentByID(ctx context.Context, id string) (*entities.Shipment, error) {
	if !isValidID(id) {
		return nil, ErrInvalidShipmentID
	}

	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if err := s.attachEvents(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *Service) GetShipmentByWaybill(ctx context.Context, waybill string) (*entities.Shipment, error) {
	if !isValidID(waybill) {
		return nil, ErrInvalidWaybill
	}

	shipment, err := s.repository.GetByWaybill(ctx, waybill)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if err := s.attachEvents(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *Service) attachEvents(ctx context.Context, shipment *entities.Shipment) error {
	events, err := s.repository.GetTrackingEvents(ctx, shipment.ID)
	if err != nil {
		return fmt.Errorf("get tracking events: %w", err)
	}
	shipment.TrackingEvents = events
	return nil
}

// loadSettings строки нет - работаем на значениях из конфига.
// Незаполненные поля строки тоже добиваются из конфига.
func (s *Service) loadSettings(ctx context.Context) (entities.ShipmentSettings, error) {
	stored, err := s.settingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return s.defaults, nil
		}
		return entities.ShipmentSettings{}, fmt.Errorf("get shipment settings: %w", err)
	}

	settings := *stored
	if settings.DefaultWeightGrams <= 0 {
		settings.DefaultWeightGrams = s.defaults.DefaultWeightGrams
	}
	if settings.DefaultLengthCm <= 0 {
		settings.DefaultLengthCm = s.defaults.DefaultLengthCm
	}
	if settings.DefaultBreadthCm <= 0 {
		settings.DefaultBreadthCm = s.defaults.DefaultBreadthCm
	}
	if settings.DefaultHeightCm <= 0 {
		settings.DefaultHeightCm = s.defaults.DefaultHeightCm
	}
	if settings.LeadTimeDays <= 0 {
		settings.LeadTimeDays = s.defaults.LeadTimeDays
	}
	if settings.DefaultHSNCode == "" {
		settings.DefaultHSNCode = s.defaults.DefaultHSNCode
	}
	if !settings.DefaultShippingMode.IsValid() {
		settings.DefaultShippingMode = s.defaults.DefaultShippingMode
	}
	return settings, nil
}

// rollbackWaybills отказ перевозчика или отсутствие токена: номера у перевозчика не заняты,
// возвращаем в пул. Любой другой сбой: списываем.
func (s *Service) rollbackWaybills(ctx context.Context, codes []string, actor string, cause error) {
	ctx = context.WithoutCancel(ctx)
	log := s.log.With(
		logger.NewField("waybills", codes),
		logger.NewField("cause", cause),
	)

	if delhivery.IsBusinessError(cause) || errors.Is(cause, delhivery.ErrNotConfigured) {
		if _, err := s.waybillPool.Release(ctx, codes, actor); err != nil {
			log.Error("failed to release waybills", logger.NewField("error", err))
			return
		}
		log.Info("waybills released after carrier rejection")
		return
	}

	for _, code := range codes {
		if err := s.waybillPool.Cancel(ctx, code); err != nil {
			log.Error("failed to cancel waybill", logger.NewField("waybill", code), logger.NewField("error", err))
		}
	}
	log.Warn("waybills cancelled after carrier failure")
}

// publish событие не критично для операции: ошибка только в лог.
func (s *Service) publish(ctx context.Context, eventType entities.ShipmentEventType, shipment *entities.Shipment) {
	event := entities.ShipmentEvent{
		Type:           eventType,
		ShipmentID:     shipment.ID,
		OrderID:        shipment.OrderID,
		PrimaryWaybill: shipment.PrimaryWaybill,
		Status:         shipment.Status,
		Demo:           shipment.Demo,
		OccurredAt:     s.now(),
	}

	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.log.Warn("failed to publish shipment event",
			logger.NewField("event", eventType),
			logger.NewField("shipment_id", shipment.ID),
			logger.NewField("error", err),
		)
	}
}

// resolvePackage запрос -> заказ -> настройки. Отсутствие метаданных никогда не блокирует.
func resolvePackage(req CreateShipmentRequest, order *entities.Order, settings entities.ShipmentSettings) entities.PackageAttributes {
	pkg := entities.PackageAttributes{
		WeightGrams:  firstPositive(req.WeightGrams, order.WeightGrams, settings.DefaultWeightGrams),
		LengthCm:     firstPositive(req.LengthCm, order.LengthCm, settings.DefaultLengthCm),
		BreadthCm:    firstPositive(req.BreadthCm, order.BreadthCm, settings.DefaultBreadthCm),
		HeightCm:     firstPositive(req.HeightCm, order.HeightCm, settings.DefaultHeightCm),
		ShippingMode: req.ShippingMode,
		Quantity:     max(order.Quantity, 1),
	}
	if !pkg.ShippingMode.IsValid() {
		pkg.ShippingMode = settings.DefaultShippingMode
	}

	switch req.ShipmentType {
	case entities.ShipmentReverse:
		pkg.PaymentMode = entities.PaymentPickup
	case entities.ShipmentReplacement:
		pkg.PaymentMode = entities.PaymentREPL
	default:
		pkg.PaymentMode = order.PaymentMode
		if pkg.PaymentMode != entities.PaymentCOD {
			pkg.PaymentMode = entities.PaymentPrepaid
		}
	}
	if pkg.PaymentMode == entities.PaymentCOD {
		pkg.CODAmount = order.CODAmount
		if pkg.CODAmount <= 0 {
			pkg.CODAmount = order.TotalAmount
		}
	}

	return pkg
}

func firstPositive(fromRequest, fromOrder *float64, fallback float64) float64 {
	if fromRequest != nil && *fromRequest > 0 {
		return *fromRequest
	}
	if fromOrder != nil && *fromOrder > 0 {
		return *fromOrder
	}
	return fallback
}

func anyDemo(waybills []entities.Waybill) bool {
	for _, w := range waybills {
		if w.IsDemo() {
			return true
		}
	}
	return false
}

func demoManifestResult(codes []string) *entities.ManifestResult {
	packages := make([]entities.ManifestPackage, len(codes))
	for i, code := range codes {
		packages[i] = entities.ManifestPackage{Waybill: code, Status: "Demo"}
	}

	raw, _ := json.Marshal(map[string]any{
		"demo":     true,
		"waybills": codes,
	})

	return &entities.ManifestResult{
		Success:  true,
		Packages: packages,
		Remark:   "demo waybill, manifest not sent to carrier",
		Raw:      raw,
	}
}

func codesOf(waybills []entities.Waybill) []string {
	codes := make([]string, len(waybills))
	for i, w := range waybills {
		codes[i] = w.Code
	}
	return codes
}
