package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/arivera-dev/inventario/internal/ai"
	"github.com/arivera-dev/inventario/internal/alert"
	"github.com/arivera-dev/inventario/internal/assistant"
	"github.com/arivera-dev/inventario/internal/config"
	"github.com/arivera-dev/inventario/internal/dashboard"
	"github.com/arivera-dev/inventario/internal/event"
	"github.com/arivera-dev/inventario/internal/http"
	"github.com/arivera-dev/inventario/internal/log"
	"github.com/arivera-dev/inventario/internal/relay"
	"github.com/arivera-dev/inventario/internal/repository"
	"github.com/arivera-dev/inventario/internal/service"
	"github.com/arivera-dev/inventario/internal/storage/db"
	"github.com/arivera-dev/inventario/internal/storage/mq"
	"github.com/arivera-dev/inventario/internal/storage/sqlite"
	"github.com/arivera-dev/inventario/internal/telemetry"
	"github.com/arivera-dev/inventario/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running standalone application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log       config.Log
		Postgres  config.Postgres
		SQLite    config.SQLite
		HTTP      config.HTTP
		Relay     config.Relay
		Kafka     config.Kafka
		Otel      config.Otel
		Alert     config.Alert
		Assistant config.Assistant
		Gemini    config.Gemini
		Dashboard config.Dashboard
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	productStore, err := sqlite.NewStore(ctx, cfg.SQLite)
	if err != nil {
		return fmt.Errorf("error opening product store: %w", err)
	}
	defer productStore.Close()

	kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
	if err != nil {
		return fmt.Errorf("error creating kafka producer: %w", err)
	}
	defer kafkaProducer.Close()

	kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("error creating kafka consumer: %w", err)
	}
	defer kafkaConsumer.Close()

	inventoryRepository := repository.NewInventoryRepository(dbClient)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)

	aiClient := ai.NewGeminiClient(cfg.Gemini)
	executor := db.NewExecutor(dbClient)

	auditService := service.NewAuditService(dbClient, outboxMsgRepository)
	simpleService := assistant.NewSimpleService(logger, productStore, aiClient)
	catalogService := assistant.NewCatalogService(logger, cfg.Assistant, executor, aiClient, auditService)
	dashboardService := dashboard.NewService(logger, cfg.Dashboard, inventoryRepository)

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := event.New(logger, kafkaConsumer)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running event service: %w", err))
		}
		logger.InfoContext(ctx, "event service started")

		<-interruptChan

		logger.InfoContext(ctx, "event service is shutting down")
		cleanup()

		logger.InfoContext(ctx, "event service is stopped")
	})

	wg.Go(func() {
		svc := http.New(cfg.HTTP, cfg.Assistant, logger,
			simpleService, catalogService, dashboardService, productStore)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Go(func() {
		svc := relay.NewService(cfg.Relay, logger, dbClient, outboxMsgRepository, kafkaProducer)
		cleanup := svc.Run(ctx)
		logger.InfoContext(ctx, "relay service started")

		<-interruptChan

		logger.InfoContext(ctx, "relay service is shutting down")
		cleanup()

		logger.InfoContext(ctx, "relay service is stopped")
	})

	wg.Go(func() {
		svc := alert.NewService(cfg.Alert, logger, dbClient, inventoryRepository, outboxMsgRepository)
		cleanup := svc.Run(ctx)
		logger.InfoContext(ctx, "alert service started")

		<-interruptChan

		logger.InfoContext(ctx, "alert service is shutting down")
		cleanup()

		logger.InfoContext(ctx, "alert service is stopped")
	})

	wg.Wait()

	return nil
}
