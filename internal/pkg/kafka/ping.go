package kafka

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/IBM/sarama"
	"shipment/pkg/logger"
	retrierconfig "shipment/pkg/retrier"
	"shipment/pkg/retrier/backoff_adapter"
)

// брокеры в compose поднимаются последними, топики создает init-контейнер
const (
	connectInitialInterval = time.Second
	connectMaxInterval     = 15 * time.Second
	connectMaxElapsedTime  = 2 * time.Minute
	connectRandomization   = 0.5
	connectMultiplier      = 2
)

// waitForBrokers ждет, пока брокеры ответят и все topics появятся в метаданных.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config, topics []string) error {
	var attempt uint64

	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: connectInitialInterval,
		MaxInterval:     connectMaxInterval,
		MaxElapsedTime:  connectMaxElapsedTime,
		Randomization:   connectRandomization,
		Multiplier:      connectMultiplier,
		Notify: func(err error, next time.Duration) {
			log.With(
				logger.NewField("attempt", attempt),
				logger.NewField("next_in", next),
				logger.NewField("error", err),
			).Warn("kafka is not ready yet")
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.With(logger.NewField("error", err)).Warn("failed to close Kafka probe client")
			}
		}()

		existing, err := client.Topics()
		if err != nil {
			return err
		}
		if missing := missingTopics(existing, topics); len(missing) > 0 {
			return fmt.Errorf("topics not found: %v", missing)
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return nil
}

func missingTopics(existing, required []string) []string {
	var missing []string
	for _, topic := range required {
		if !slices.Contains(existing, topic) {
			missing = append(missing, topic)
		}
	}
	return missing
}
