package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/checkout"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/events"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/export"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/grpcserver"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/objectstore"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/widget"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config error:", err)
		os.Exit(1)
	}

	log := logger.New("packetery", cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("Service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Service gracefully stopped")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if cfg.Admin.Password != "" {
		if err := db.EnsureAdmin(ctx, database, cfg.Admin.Username, cfg.Admin.Password, log); err != nil {
			return fmt.Errorf("admin user: %w", err)
		}
	}

	redisClient := redisstore.NewClient(cfg.Redis)
	defer redisClient.Close()

	carrierRepo := postgresql.NewCarrierRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	carrierCache := cache.NewCarrierCache(carrierRepo, log)
	if err := carrierCache.LoadInitialData(ctx); err != nil {
		log.Warn("Carrier cache starts empty", zap.Error(err))
	}

	st := storage.NewStorage(database, storage.Repositories{
		Carriers:     carrierRepo,
		PricingRules: postgresql.NewPricingRuleRepo(database),
		WeightRules:  postgresql.NewWeightRuleRepo(database),
		Orders:       postgresql.NewOrderRepo(database),
		Logs:         postgresql.NewLogRepo(database),
		Customs:      postgresql.NewCustomsDeclarationRepo(database),
		Outbox:       outboxRepo,
		Users:        postgresql.NewUserRepo(database),
	}, carrierCache, log)

	registry := carrier.NewRegistry(st)
	if err := registry.Refresh(ctx); err != nil {
		log.Warn("Carrier strategies not loaded", zap.Error(err))
	}

	pricingService := pricing.NewService(st, st, registry, log)
	sessions := checkout.NewSessionStore(redisClient, cfg.Checkout.SessionTTL)
	widgetClient := widget.NewClient(cfg.Packeta.WidgetURL, cfg.Packeta.WidgetAPIKey, cfg.Packeta.WidgetTimeout, log)
	checkoutService := checkout.NewService(registry, pricingService, widgetClient, sessions, log)

	dispatcher := events.NewDispatcher(log)
	checkout.NewPlacement(st, pricingService, sessions, log).Register(dispatcher)

	labels, err := objectstore.NewMinIOStore(ctx, cfg.MinIO, log)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}
	exporter := export.NewExporter(packetapi.NewClient(cfg.Packeta.API, log), st, labels, cfg.Packeta.Eshop, log)

	var producer kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.Kafka.Brokers, log)
	} else {
		producer = kafka.NewLogProducer(log)
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
	}, log)

	httpServer := server.New(server.Deps{
		PricingRules: st,
		Orders:       st,
		Carriers:     st,
		Strategies:   registry,
		Checkout:     checkoutService,
		Dispatcher:   dispatcher,
		Exporter:     exporter,
		Labels:       labels,
		RatesConfig:  pricing.NewRatesStore(redisClient),
		FeatureFlags: featureflag.NewStore(redisClient, featureflag.DefaultFlags(), log),
		Users:        st,
		Audit:        st,
	}, cfg.Server, log)

	healthServer := grpcserver.NewServer([]grpcserver.Check{
		{Name: "postgres", Pinger: database},
		{Name: "redis", Pinger: redisClient},
	}, cfg.HealthInterval, log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gCtx, cfg.HTTPPort)
	})
	g.Go(func() error {
		return healthServer.Run(gCtx, cfg.GRPCPort)
	})
	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		healthServer.Shutdown()
		publisher.Shutdown()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
