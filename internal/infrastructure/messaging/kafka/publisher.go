package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"grocery/internal/domain/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes order-creation requests to the intake topic.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

// PublishOrder sends req keyed by a fresh uuid and returns the key.
func (p *Publisher) PublishOrder(ctx context.Context, req model.CreateOrderRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order: %w", err)
	}
	key := uuid.NewString()
	if err := p.PublishRaw(ctx, key, payload); err != nil {
		return "", err
	}
	return key, nil
}

// PublishRaw sends payload as is.
func (p *Publisher) PublishRaw(ctx context.Context, key string, payload []byte) error {
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: payload}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
