package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config error:", err)
		os.Exit(1)
	}

	log := logger.New("packetery-consumer", cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if len(cfg.Kafka.Brokers) == 0 {
		log.Error("KAFKA_BROKERS is required")
		os.Exit(1)
	}

	consumer := kafka.NewConsumer(cfg.Kafka, log)
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error("Failed to close kafka reader", zap.Error(err))
		}
	}()

	log.Info("Consuming packet events",
		zap.String("topic", cfg.Kafka.Topic),
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("group_id", cfg.Kafka.GroupID))

	err = consumer.Run(ctx, func(_ context.Context, event repository.PacketEventPayload) error {
		log.Info("Packet event",
			zap.String("event", event.Event),
			zap.String("order_number", event.OrderNumber),
			zap.String("packet_id", event.PacketID),
			zap.String("barcode", event.Barcode),
			zap.Int("status_code", event.StatusCode),
			zap.Time("timestamp", event.Timestamp))
		return nil
	})
	if err != nil {
		log.Error("Consumer stopped with error", zap.Error(err))
	}
	log.Info("Consumer stopped")
}
