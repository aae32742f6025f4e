package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	application "shipment/internal/app"
	"shipment/internal/handlers/rest/healthcheck_head"
	"shipment/internal/handlers/rest/label_get"
	"shipment/internal/handlers/rest/ping_get"
	"shipment/internal/handlers/rest/serviceability_get"
	"shipment/internal/handlers/rest/shipment_create_post"
	"shipment/internal/handlers/rest/shipment_get"
	"shipment/internal/handlers/rest/shipment_manage_delete"
	"shipment/internal/handlers/rest/shipment_manage_put"
	"shipment/internal/handlers/rest/shipment_tracking_get"
	"shipment/internal/handlers/rest/warehouse_post"
	"shipment/internal/handlers/rest/warehouses_get"
	"shipment/internal/handlers/rest/waybills_post"
	"shipment/internal/pkg/config"
	"shipment/internal/pkg/dotenv"
	"shipment/internal/pkg/grpchealth"
	"shipment/internal/pkg/kafka"
	metrics_system "shipment/internal/pkg/metrics"
	"shipment/internal/pkg/middlewares/graceful_shutdown"
	"shipment/internal/pkg/middlewares/metrics"
	"shipment/internal/pkg/middlewares/rate_limiter"
	"shipment/internal/pkg/middlewares/timeout"
	"shipment/internal/pkg/postgres"
	"shipment/pkg/logger"
	"shipment/pkg/logger/zap_adapter"
	"shipment/pkg/token_bucket"
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

	mainLog.Info("starting shipment-service application")

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
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx не наследуют сигнальный ctx, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(
		logger.NewField("component", "shipment-service"),
	)

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, kafka.SplitBrokers(cfg.Kafka.Brokers))
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

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultSystemMetricsInterval)

	// ongoingCtx отдается соединениям через BaseContext и отменяется только после
	// server.Shutdown, иначе SIGTERM оборвал бы создание отправления на середине.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoing := context.WithCancel(context.Background())
	defer stopOngoing()
	baseContext := func(_ net.Listener) context.Context { return ongoingCtx }

	gate := graceful_shutdown.NewGate()

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:     initRouter(log, gate, &isShuttingDown, pool, businessApp, cfg.Server, cfg.Delhivery.CarrierMode()),
		BaseContext: baseContext,

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// ответ с PDF-этикеткой и вызовы перевозчика под таймаутом middleware
		WriteTimeout: cfg.Server.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var pprofServer *http.Server
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler:           initPprofRouter(&isShuttingDown, pool),
			BaseContext:       baseContext,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}

	var healthServer *grpchealth.Server
	if cfg.Server.GRPCHealthPort != "" {
		healthServer = grpchealth.NewServer(log)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		return listen(server, "server")
	})

	if pprofServer != nil {
		g.Go(func() error {
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			return listen(pprofServer, "pprof server")
		})
	}

	if healthServer != nil {
		g.Go(func() error {
			if err := healthServer.ListenAndServe(cfg.Server.GRPCHealthPort); err != nil {
				return fmt.Errorf("grpc health server: %w", err)
			}
			return nil
		})
	}

	// сигнал или падение одного из серверов
	g.Go(func() error {
		<-gCtx.Done()
		runLog.Info("Shutdown signal received")

		isShuttingDown.Store(true)
		if healthServer != nil {
			healthServer.SetServing(false)
		}
		time.Sleep(readinessDrainDelay)

		runLog.Info("draining requests", logger.NewField("in_flight", gate.InFlight()))
		gate.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()

		forced := false
		if err := server.Shutdown(shutdownCtx); err != nil {
			runLog.Error("server shutdown error", logger.NewField("error", err))
			forced = true
		}
		if pprofServer != nil {
			if err := pprofServer.Shutdown(shutdownCtx); err != nil {
				runLog.Error("pprof server shutdown error", logger.NewField("error", err))
				forced = true
			}
		}
		if healthServer != nil {
			healthServer.GracefulStop()
		}

		stopOngoing()
		if forced {
			runLog.Info("Graceful shutdown timeout, forcing close")
			time.Sleep(shutdownHardPeriod)
		}
		return nil
	})

	err = g.Wait()

	// фоновые задачи слушают сигнальный ctx
	stop()
	businessApp.BackgroundWorkers.Wait()

	if err != nil {
		return err
	}
	runLog.Info("Server stopped")
	return nil
}

func listen(server *http.Server, name string) error {
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func initRouter(
	log logger.Logger,
	gate *graceful_shutdown.Gate,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
	carrierMode string,
) http.Handler {
	router := mux.NewRouter()

	router.Use(gate.Middleware)

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.New(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, carrierMode)).Methods(http.MethodGet)

	shipment := router.PathPrefix("/shipment").Subrouter()
	shipment.Handle("/create", shipment_create_post.New(log, app.ServiceShipment)).Methods(http.MethodPost)
	shipment.Handle("/get", shipment_get.New(log, app.ServiceShipment)).Methods(http.MethodGet)
	shipment.Handle("/tracking", shipment_tracking_get.New(log, app.ServiceShipment)).Methods(http.MethodGet)
	shipment.Handle("/manage", shipment_manage_put.New(log, app.ServiceShipment)).Methods(http.MethodPut)
	shipment.Handle("/manage", shipment_manage_delete.New(log, app.ServiceShipment)).Methods(http.MethodDelete)
	shipment.Handle("/waybills", waybills_post.New(log, app.ServiceShipment)).Methods(http.MethodPost)
	shipment.Handle("/serviceability", serviceability_get.New(log, app.ServiceShipment)).Methods(http.MethodGet)
	shipment.Handle("/label", label_get.New(log, app.ServiceShipment)).Methods(http.MethodGet)
	shipment.Handle("/warehouses", warehouses_get.New(log, app.ServiceWarehouse)).Methods(http.MethodGet)
	shipment.Handle("/warehouse", warehouse_post.New(log, app.ServiceWarehouse)).Methods(http.MethodPost)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
