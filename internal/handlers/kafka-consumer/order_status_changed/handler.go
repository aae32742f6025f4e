package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-playground/validator/v10"
	"shipment/internal/entities"
	orderservice "shipment/internal/service/order"
	"shipment/pkg/logger"
)

type Handler struct {
	processor      StatusProcessor
	log            eventLogger
	validate       *validator.Validate
	processTimeout time.Duration
}

func New(log eventLogger, processor StatusProcessor, processTimeout time.Duration) *Handler {
	return &Handler{
		processor: processor,
		log: log.With(
			logger.NewField("handler", "order.status.changed"),
		),
		validate:       validator.New(),
		processTimeout: processTimeout,
	}
}

func (h *Handler) Setup(sess sarama.ConsumerGroupSession) error {
	h.log.With(
		logger.NewField("member", sess.MemberID()),
		logger.NewField("generation", sess.GenerationID()),
	).Debug("consumer group session started")
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim сообщения коммитятся по одному. Некоммиченное сообщение
// прочитается заново после ребаланса или рестарта.
func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Debug("claim messages channel closed")
				return nil
			}

			if commit := h.handle(sess.Context(), message); !commit {
				return nil
			}
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			h.log.Debug("session context done")
			return nil
		}
	}
}

// handle false означает, что сообщение нужно оставить в топике и выйти из claim.
func (h *Handler) handle(ctx context.Context, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(ctx, h.processTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	event, err := h.decode(message.Value)
	if err != nil {
		OrderStatusEventsTotal.WithLabelValues(outcomeInvalid).Inc()
		msgLog.With(
			logger.NewField("error", err),
		).Error("bad order status event, skipping")
		return true
	}

	msgLog = msgLog.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("event_status", event.Status),
	)

	status := entities.OrderStatusType(event.Status)
	order, err := h.processor.ProcessOrderStatusChange(ctx, entities.OrderModify{
		ID:     &event.OrderID,
		Status: &status,
	})
	if err != nil {
		outcome := classify(err)
		OrderStatusEventsTotal.WithLabelValues(outcome).Inc()

		errLog := msgLog.With(logger.NewField("error", err))
		switch outcome {
		case outcomeRetry:
			errLog.Warn("order status event interrupted, will be redelivered")
			return false
		case outcomeSkipped:
			errLog.Info("order status event skipped")
		default:
			errLog.Error("order status event not applied")
		}
		return true
	}

	OrderStatusEventsTotal.WithLabelValues(outcomeProcessed).Inc()
	msgLog.With(
		logger.NewField("order_status", order.Status.String()),
	).Info("order status event processed")
	return true
}

func (h *Handler) decode(value []byte) (*orderStatusEvent, error) {
	var event orderStatusEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := h.validate.Struct(event); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &event, nil
}

// classify отмена и таймаут повторяются, остальное коммитится, чтобы не блокировать партицию.
func classify(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeRetry
	case errors.Is(err, orderservice.ErrUndefinedStatus),
		errors.Is(err, orderservice.ErrOrderNotFound),
		errors.Is(err, orderservice.ErrInvalidOrderID):
		return outcomeSkipped
	default:
		return outcomeFailed
	}
}
