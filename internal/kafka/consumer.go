package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type PacketEventHandler func(ctx context.Context, event repository.PacketEventPayload) error

// Consumer reads packet events from kafka.
type Consumer struct {
	reader *kafka.Reader
	logger *zap.Logger
}

func NewConsumer(cfg ConsumerConfig, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			GroupID:        cfg.GroupID,
			Topic:          cfg.Topic,
			MinBytes:       10e3,
			MaxBytes:       10e6,
			CommitInterval: time.Second,
			MaxWait:        3 * time.Second,
		}),
		logger: logger,
	}
}

// Run reads messages until ctx is cancelled. Malformed messages and handler
// failures are logged and skipped.
func (c *Consumer) Run(ctx context.Context, handle PacketEventHandler) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Failed to read message", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(5 * time.Second):
			}
			continue
		}

		l := c.logger.With(zap.Int("partition", m.Partition), zap.Int64("offset", m.Offset))
		event, err := DecodePacketEvent(m)
		if err != nil {
			l.Warn("Skipping malformed packet event", zap.Error(err))
			continue
		}
		if err := handle(ctx, event); err != nil {
			l.Error("Failed to handle packet event", zap.String("order_number", event.OrderNumber), zap.Error(err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

var errEmptyEvent = errors.New("packet event without event name")

func DecodePacketEvent(m kafka.Message) (repository.PacketEventPayload, error) {
	var event repository.PacketEventPayload
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return event, fmt.Errorf("failed to decode packet event: %w", err)
	}
	if event.Event == "" {
		return event, errEmptyEvent
	}
	return event, nil
}
