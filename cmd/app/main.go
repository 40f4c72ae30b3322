package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"grocery/internal/application/managers"
	"grocery/internal/application/usecases"
	"grocery/internal/application/validation"
	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"
	"grocery/internal/infrastructure/cache"
	"grocery/internal/infrastructure/config"
	"grocery/internal/infrastructure/db"
	"grocery/internal/infrastructure/http/handlers"
	"grocery/internal/infrastructure/http/server"
	"grocery/internal/infrastructure/messaging/kafka"
	"grocery/internal/infrastructure/persistence/postgres"
	"grocery/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", err)
		}
	}()

	cfg, err := config.LoadServiceConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	sqldb, err := db.NewDB(cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	defer func() {
		if err := sqldb.Close(); err != nil {
			logger.Error("Failed to close DB connection", zap.Error(err))
		}
	}()

	if err := db.RunMigrations(sqldb, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	checks := map[string]server.HealthCheck{"postgres": sqldb.PingContext}

	var backend repository.Cache
	switch cfg.Cache.Backend {
	case config.CacheBackendMemory:
		backend = cache.NewMemoryCache(logger)
	default:
		redisCache := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.Prefix, logger)
		defer func() {
			if err := redisCache.Close(); err != nil {
				logger.Error("Failed to close Redis client", zap.Error(err))
			}
		}()
		checks["redis"] = redisCache.Ping
		backend = redisCache
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	sharedCache := cache.NewInstrumented(backend, metrics.NewCacheMetrics(registry))

	validator := validation.NewValidator()
	lookups := postgres.NewLookupRepository(sqldb, logger)

	orderManager := managers.NewOrderManager(
		postgres.NewOrderRepository(sqldb, logger),
		lookups, lookups, lookups,
		sharedCache, validator, logger,
	)
	producerManager := managers.NewProducerManager(postgres.NewProducerRepository(sqldb, logger), sharedCache, validator, logger)
	supplierManager := managers.NewSupplierManager(postgres.NewSupplierRepository(sqldb, logger), sharedCache, validator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	restoreUC := usecases.NewRestoreCacheUseCase(map[string]repository.CacheWarmer{
		"order":    orderManager,
		"producer": producerManager,
		"supplier": supplierManager,
	}, logger)
	if err := restoreUC.Execute(ctx); err != nil {
		logger.Error("Failed to restore cache", zap.Error(err))
	}

	var wg sync.WaitGroup
	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.GroupID,
			usecases.NewIngestOrderUseCase(orderManager, logger), logger)
		wg.Add(1)
		go consumer.Run(ctx, &wg)
	}

	srv := server.NewServer(map[string]server.Routes{
		"orders":    handlers.NewAggregateHandler[model.CreateOrderRequest, model.UpdateOrderRequest, model.OrderResponse](orderManager, "order", logger),
		"producers": handlers.NewAggregateHandler[model.CreateProducerRequest, model.UpdateProducerRequest, model.ProducerResponse](producerManager, "producer", logger),
		"suppliers": handlers.NewAggregateHandler[model.CreateSupplierRequest, model.UpdateSupplierRequest, model.SupplierResponse](supplierManager, "supplier", logger),
	}, registry, checks, logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(":" + cfg.HTTP.Port)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	wg.Wait()
	logger.Info("Service stopped")
}
