package shipment_events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"shipment/internal/entities"
)

// Publisher пишет события отправлений в Kafka, ключ сообщения ID отправления.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.ShipmentEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("marshal shipment event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ShipmentID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	start := time.Now()
	_, _, err = p.producer.SendMessage(msg)
	PublishDuration.WithLabelValues(string(event.Type), status(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("publish %s for shipment %s: %w", event.Type, event.ShipmentID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
