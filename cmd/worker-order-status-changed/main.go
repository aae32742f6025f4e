package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"shipment/internal/app"
	orderstatushandler "shipment/internal/handlers/kafka-consumer/order_status_changed"
	"shipment/internal/handlers/rest/healthcheck_head"
	"shipment/internal/pkg/config"
	"shipment/internal/pkg/dotenv"
	"shipment/internal/pkg/kafka"
	metrics_system "shipment/internal/pkg/metrics"
	"shipment/internal/pkg/postgres"
	"shipment/pkg/logger"
	"shipment/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapterWithLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting order-status-changed worker")

	if err := dotenv.Load(); err != nil {
		if !errors.Is(err, dotenv.ErrNotFound) {
			mainLog.Error("failed to load .env file",
				logger.NewField("error", err),
			)
			return
		}
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config",
			logger.NewField("error", err),
		)
		return
	}

	err = run(context.Background(), appLogger, cfg)
	if err != nil {
		mainLog.Error("application failed",
			logger.NewField("error", err),
		)
		return
	}
}

//nolint:contextcheck // consumeCtx и shutdownCtx не наследуют сигнальный ctx, это часть graceful shutdown
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(
		logger.NewField("component", "order-status-worker"),
	)

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	brokers := kafka.SplitBrokers(cfg.Kafka.Brokers)

	// отмена отправлений по заказу публикует события статуса
	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	workerApp, err := app.InitializeKafkaWorkerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultSystemMetricsInterval)

	consumer, err := kafka.NewConsumer(
		ctx,
		log,
		&cfg.Kafka,
		brokers,
		cfg.Kafka.ConsumerGroup,
		[]string{cfg.Kafka.Topic},
		orderstatushandler.New(log, workerApp.OrderService, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout),
	)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	healthServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Kafka.PortHealthcheck),
		Handler:           initHealthcheckRouter(&isShuttingDown, pool),
		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// сообщение в обработке не должно обрываться по SIGTERM, consumeCtx отменяется
	// только после ожидания readiness
	consumeCtx, stopConsuming := context.WithCancel(context.Background())
	defer stopConsuming()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runLog.With(
			logger.NewField("port", cfg.Kafka.PortHealthcheck),
		).Info("Server starting")
		if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("healthcheck server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		runLog.With(
			logger.NewField("topic", cfg.Kafka.Topic),
			logger.NewField("group", cfg.Kafka.ConsumerGroup),
		).Info("Kafka consumer starting")
		if err := consumer.Start(consumeCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("consumer: %w", err)
		}
		return nil
	})

	// сигнал или падение соседней горутины
	g.Go(func() error {
		<-gCtx.Done()
		runLog.Info("Shutdown signal received")

		isShuttingDown.Store(true)
		time.Sleep(readinessDrainDelay)

		stopConsuming()
		if err := consumer.Close(); err != nil {
			runLog.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			runLog.With(logger.NewField("error", err)).Warn("healthcheck server shutdown error")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	runLog.Info("Worker stopped")
	return nil
}

func initHealthcheckRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
