package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"grocery/internal/domain/model"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	fetchRetryDelay = time.Second
	maxRetryDelay   = 30 * time.Second
)

// OrderIngester handles one raw order message.
type OrderIngester interface {
	Execute(ctx context.Context, payload []byte) (model.Result, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer feeds order-creation messages to the order manager. Offsets are
// committed after success or a business rejection. Any other failure is
// retried on the same message with backoff, so no later offset is committed
// past it.
type Consumer struct {
	reader     messageReader
	ingest     OrderIngester
	retryDelay time.Duration
	logger     *zap.Logger
}

func NewConsumer(broker, topic, groupID string, ingest OrderIngester, logger *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		MaxWait:  1 * time.Second,
	})
	logger.Info("Kafka consumer configured", zap.String("topic", topic), zap.String("groupID", groupID))
	return newConsumer(reader, ingest, logger)
}

func newConsumer(reader messageReader, ingest OrderIngester, logger *zap.Logger) *Consumer {
	return &Consumer{reader: reader, ingest: ingest, retryDelay: fetchRetryDelay, logger: logger}
}

// Run consumes until ctx is canceled, then closes the reader.
func (c *Consumer) Run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Error("Failed to close Kafka reader", zap.Error(err))
		}
	}()

	c.logger.Info("Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				c.logger.Info("Kafka consumer context canceled, stopping...")
				return
			}
			c.logger.Error("Failed to fetch message from Kafka", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchRetryDelay):
			}
			continue
		}

		if !c.process(ctx, msg) {
			c.logger.Info("Kafka consumer context canceled, leaving message uncommitted", zap.Int64("offset", msg.Offset))
			return
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("Failed to commit message", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
	}
}

// process handles msg until it may be committed. It returns false only when
// ctx ends first.
func (c *Consumer) process(ctx context.Context, msg kafka.Message) bool {
	delay := c.retryDelay
	for attempt := 1; ; attempt++ {
		if c.handle(ctx, msg) {
			return true
		}
		c.logger.Warn("Retrying order message",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay))
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

// handle processes one message and reports whether its offset should be committed.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) bool {
	res, err := c.ingest.Execute(ctx, msg.Value)
	if err == nil {
		c.logger.Info("Order processed from Kafka", zap.Int64("offset", msg.Offset), zap.String("message", res.Message))
		return true
	}
	if kind := model.KindOf(err); kind != "" {
		c.logger.Info("Order rejected, skipping",
			zap.String("kind", string(kind)),
			zap.Error(err),
			zap.Int64("offset", msg.Offset))
		return true
	}
	c.logger.Error("Failed to process order", zap.Error(err), zap.Int64("offset", msg.Offset))
	return false
}
