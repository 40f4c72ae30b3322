package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery/internal/domain/model"
	"grocery/internal/infrastructure/config"
	"grocery/internal/infrastructure/messaging/kafka"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

var (
	intervalFlag = flag.Duration("interval", 0, "Time interval between messages (overrides PRODUCER_INTERVAL)")
	badDataRate  = flag.Float64("bad-rate", -1, "Rate of bad data messages (overrides PRODUCER_BAD_DATA_RATE)")
)

var statuses = []string{
	string(model.OrderStatusPending),
	string(model.OrderStatusPreparing),
	string(model.OrderStatusShipped),
	string(model.OrderStatusDelivered),
	string(model.OrderStatusCanceled),
}

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", err)
		}
	}()

	cfg, err := config.LoadProducerConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if *intervalFlag > 0 {
		cfg.Interval = *intervalFlag
	}
	if *badDataRate >= 0 {
		cfg.BadDataRate = *badDataRate
	}

	publisher := kafka.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close Kafka writer", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	logger.Info("Producer started",
		zap.String("broker", cfg.Kafka.Broker),
		zap.Float64("bad_rate", cfg.BadDataRate),
		zap.Duration("interval", cfg.Interval))

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping producer...")
			return
		case <-ticker.C:
			if err := produce(ctx, publisher, cfg, logger); err != nil {
				logger.Error("Failed to produce message", zap.Error(err))
			}
		}
	}
}

func produce(ctx context.Context, publisher *kafka.Publisher, cfg *config.ProducerConfig, logger *zap.Logger) error {
	if rand.Float64() >= cfg.BadDataRate {
		return sendOrder(ctx, publisher, generateOrder(cfg.MaxReferenceID), logger)
	}
	if rand.IntN(2) == 0 {
		return sendGarbage(ctx, publisher)
	}
	// Well-formed but pointing at a customer that does not exist.
	req := generateOrder(cfg.MaxReferenceID)
	req.CustomerID = int64(cfg.MaxReferenceID) * 1000
	return sendOrder(ctx, publisher, req, logger)
}

func sendOrder(ctx context.Context, publisher *kafka.Publisher, req model.CreateOrderRequest, logger *zap.Logger) error {
	key, err := publisher.PublishOrder(ctx, req)
	if err != nil {
		return err
	}
	logger.Info("Order sent",
		zap.String("key", key),
		zap.Int64("customer_id", req.CustomerID),
		zap.Int64s("product_ids", req.ProductIDs))
	return nil
}

func sendGarbage(ctx context.Context, publisher *kafka.Publisher) error {
	garbage := []byte(fmt.Sprintf(`{"customer_id: "%s", "broken": true,`, gofakeit.UUID()))
	return publisher.PublishRaw(ctx, gofakeit.UUID(), garbage)
}

func generateOrder(maxID int) model.CreateOrderRequest {
	created := gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now()).UTC()
	status := model.OrderStatus(gofakeit.RandomString(statuses))

	var delivered *time.Time
	if status == model.OrderStatusDelivered {
		d := created.Add(time.Duration(gofakeit.Number(1, 72)) * time.Hour)
		delivered = &d
	}

	products := make([]int64, gofakeit.Number(1, 4))
	for i := range products {
		products[i] = int64(gofakeit.Number(1, maxID))
	}

	return model.CreateOrderRequest{
		CreatedDate:   created,
		DeliveredDate: delivered,
		Status:        status,
		CustomerID:    int64(gofakeit.Number(1, maxID)),
		PaymentID:     int64(gofakeit.Number(1, maxID)),
		ProductIDs:    products,
	}
}
