package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DelhiveryStaging    = "staging"
	DelhiveryProduction = "production"

	defaultDelhiveryStagingURL    = "https://staging-express.delhivery.com"
	defaultDelhiveryProductionURL = "https://track.delhivery.com"
)

type (
	Tasks struct {
		ReservationExpiryInterval time.Duration `validate:"gt=0"`
	}

	// Worker отдельный процесс cmd/worker-waybill-pool, расписания в cron-формате.
	Worker struct {
		PortHealthcheck   string
		ReplenishSchedule string
		TrackingSchedule  string
		TrackingBatchSize int           `validate:"gte=0"`
		JobTimeout        time.Duration `validate:"gte=0"`
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // пополнение ведра, запросов в секунду
		RateLimiterBurst int           // емкость ведра
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string // пустой - gRPC health не поднимаем
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
		MaxConns       int32 `validate:"omitempty,min=1,max=200"`
		MinConns       int32 `validate:"omitempty,min=0,max=200"`
	}

	Delhivery struct {
		Env           string `validate:"oneof=staging production"`
		Token         string // пустой - работаем в demo-режиме для накладных
		ClientName    string
		StagingURL    string `validate:"url"`
		ProductionURL string `validate:"url"`
		Timeout       time.Duration `validate:"gt=0"`
	}

	WaybillPool struct {
		MinStock       int           `validate:"gte=0"`
		BatchSize      int           `validate:"gt=0,lte=10000"`
		ReservationTTL time.Duration `validate:"gt=0"`
	}

	Shipment struct {
		DefaultWeightGrams  float64 `validate:"gt=0"`
		DefaultLengthCm     float64 `validate:"gt=0"`
		DefaultBreadthCm    float64 `validate:"gt=0"`
		DefaultHeightCm     float64 `validate:"gt=0"`
		LeadTimeDays        int     `validate:"gt=0"`
		DefaultHSNCode      string  `validate:"required,numeric"`
		DefaultShippingMode string  `validate:"oneof=surface express"`
	}

	Kafka struct {
		PortHealthcheck     string
		Brokers             string
		Topic               string
		ShipmentEventsTopic string
		ConsumerGroup       string
		Sarama              Sarama
		Handlers            KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel    string `validate:"omitempty,oneof=debug info warn error"`
		Tasks       Tasks
		Worker      Worker
		Server      HTTPServer
		Database    Database
		Delhivery   Delhivery
		WaybillPool WaybillPool
		Shipment    Shipment
		Kafka       Kafka
	}
)

// BaseURL адрес API перевозчика в зависимости от окружения.
func (d Delhivery) BaseURL() string {
	if d.Env == DelhiveryProduction {
		return d.ProductionURL
	}
	return d.StagingURL
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	reservationExpiryInterval, err := osGetEnvDuration("BACKGROUND_RESERVATION_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trackingBatchSize, err := osGetInt("WORKER_TRACKING_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	jobTimeout, err := osGetEnvDuration("WORKER_JOB_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minConns, err := osGetInt("POSTGRES_MIN_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	delhiveryTimeout, err := osGetEnvDuration("DELHIVERY_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minStock, err := osGetInt("WAYBILL_POOL_MIN_STOCK")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	batchSize, err := osGetInt("WAYBILL_POOL_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reservationTTL, err := osGetEnvDuration("WAYBILL_RESERVATION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	defaultWeight, err := osGetFloat("SHIPMENT_DEFAULT_WEIGHT_GRAMS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	defaultLength, err := osGetFloat("SHIPMENT_DEFAULT_LENGTH_CM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	defaultBreadth, err := osGetFloat("SHIPMENT_DEFAULT_BREADTH_CM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	defaultHeight, err := osGetFloat("SHIPMENT_DEFAULT_HEIGHT_CM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	leadTimeDays, err := osGetInt("SHIPMENT_LEAD_TIME_DAYS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			ReservationExpiryInterval: reservationExpiryInterval,
		},
		Worker: Worker{
			PortHealthcheck:   os.Getenv("WORKER_HTTP_HEALTHCHECK_PORT"),
			ReplenishSchedule: os.Getenv("WORKER_REPLENISH_SCHEDULE"),
			TrackingSchedule:  os.Getenv("WORKER_TRACKING_SCHEDULE"),
			TrackingBatchSize: trackingBatchSize,
			JobTimeout:        jobTimeout,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
			MaxConns:       int32(maxConns), //nolint:gosec // диапазон проверяется тегом
			MinConns:       int32(minConns), //nolint:gosec // диапазон проверяется тегом
		},
		Delhivery: Delhivery{
			Env:           osGetString("DELHIVERY_ENV", DelhiveryStaging),
			Token:         os.Getenv("DELHIVERY_API_TOKEN"),
			ClientName:    os.Getenv("DELHIVERY_CLIENT_NAME"),
			StagingURL:    osGetString("DELHIVERY_STAGING_URL", defaultDelhiveryStagingURL),
			ProductionURL: osGetString("DELHIVERY_PRODUCTION_URL", defaultDelhiveryProductionURL),
			Timeout:       delhiveryTimeout,
		},
		WaybillPool: WaybillPool{
			MinStock:       minStock,
			BatchSize:      batchSize,
			ReservationTTL: reservationTTL,
		},
		Shipment: Shipment{
			DefaultWeightGrams:  defaultWeight,
			DefaultLengthCm:     defaultLength,
			DefaultBreadthCm:    defaultBreadth,
			DefaultHeightCm:     defaultHeight,
			LeadTimeDays:        leadTimeDays,
			DefaultHSNCode:      os.Getenv("SHIPMENT_DEFAULT_HSN"),
			DefaultShippingMode: osGetString("SHIPMENT_DEFAULT_SHIPPING_MODE", "surface"),
		},
		Kafka: Kafka{
			Brokers:             os.Getenv("KAFKA_BROKERS"),
			Topic:               os.Getenv("KAFKA_TOPIC"),
			ShipmentEventsTopic: os.Getenv("KAFKA_SHIPMENT_EVENTS_TOPIC"),
			ConsumerGroup:       os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:     os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.ReservationExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_RESERVATION_EXPIRY_INTERVAL is required")
	}

	if cfg.Worker.PortHealthcheck == "" {
		return errors.New("WORKER_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Worker.ReplenishSchedule == "" {
		return errors.New("WORKER_REPLENISH_SCHEDULE is required")
	}
	if cfg.Worker.TrackingSchedule == "" {
		return errors.New("WORKER_TRACKING_SCHEDULE is required")
	}

	if cfg.Delhivery.Token != "" && cfg.Delhivery.ClientName == "" {
		return errors.New("DELHIVERY_CLIENT_NAME is required when DELHIVERY_API_TOKEN is set")
	}
	if cfg.Delhivery.Timeout == time.Duration(0) {
		return errors.New("DELHIVERY_TIMEOUT is required")
	}

	if cfg.WaybillPool.BatchSize == 0 {
		return errors.New("WAYBILL_POOL_BATCH_SIZE is required")
	}
	if cfg.WaybillPool.ReservationTTL == time.Duration(0) {
		return errors.New("WAYBILL_RESERVATION_TTL is required")
	}

	if cfg.Shipment.DefaultHSNCode == "" {
		return errors.New("SHIPMENT_DEFAULT_HSN is required")
	}
	if cfg.Shipment.LeadTimeDays == 0 {
		return errors.New("SHIPMENT_LEAD_TIME_DAYS is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ShipmentEventsTopic == "" {
		return errors.New("KAFKA_SHIPMENT_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	// диапазоны значений проверяем тегами
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config values: %w", err)
	}

	return nil
}

func osGetString(s, fallback string) string {
	val := os.Getenv(s)
	if val == "" {
		return fallback
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// CarrierMode demo, если токен не задан, иначе окружение перевозчика.
func (d Delhivery) CarrierMode() string {
	if d.Token == "" {
		return "demo"
	}
	return d.Env
}
