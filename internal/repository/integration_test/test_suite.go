package integration_test

import (
	"context"
	"log"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"shipment/internal/pkg/config"
	pgpool "shipment/internal/pkg/postgres"
	"shipment/pkg/logger/zap_adapter"
	"shipment/pkg/querier"
)

const (
	containerImage    = "postgres:15-alpine"
	containerDB       = "shipment_test"
	containerUser     = "postgres"
	containerPassword = "postgres"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier поднимает пул к тестовой базе и накатывает миграции один раз на пакет.
// Если POSTGRES_HOST не задан, база поднимается в testcontainers.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		cfg := dbConfigFromEnv()
		if cfg.Host == "" {
			cfg, err = startContainer(ctx)
			if err != nil {
				log.Fatalf("failed to start postgres container: %v", err)
			}
		}

		connPool, err := pgpool.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := pgpool.Migrate(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func dbConfigFromEnv() *config.Database {
	// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

// контейнер живет до конца процесса тестов, ryuk его прибирает
func startContainer(ctx context.Context) (*config.Database, error) {
	container, err := postgres.Run(ctx,
		containerImage,
		postgres.WithDatabase(containerDB),
		postgres.WithUsername(containerUser),
		postgres.WithPassword(containerPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(connString)
	if err != nil {
		return nil, err
	}
	password, _ := u.User.Password()

	return &config.Database{
		Host:     u.Hostname(),
		Port:     u.Port(),
		User:     u.User.Username(),
		Password: password,
		DBName:   strings.TrimPrefix(u.Path, "/"),
		SSLMode:  "disable",
	}, nil
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := GetQuerier()
	if setupSql == "" {
		return
	}

	_, err := q.Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE shipment_tracking_events, shipments, waybills, orders, warehouses, shipment_settings
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
