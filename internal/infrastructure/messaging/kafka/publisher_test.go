package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"grocery/internal/domain/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_PublishOrder(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := &Publisher{writer: w}
	req := model.CreateOrderRequest{CustomerID: 1, PaymentID: 2, ProductIDs: []int64{3, 4}}

	key, err := p.PublishOrder(context.Background(), req)

	require.NoError(t, err)
	_, err = uuid.Parse(key)
	require.NoError(t, err)
	require.Len(t, w.written, 1)
	assert.Equal(t, key, string(w.written[0].Key))

	var decoded model.CreateOrderRequest
	require.NoError(t, json.Unmarshal(w.written[0].Value, &decoded))
	assert.Equal(t, []int64{3, 4}, decoded.ProductIDs)
}

func TestPublisher_WriteError(t *testing.T) {
	t.Parallel()

	p := &Publisher{writer: &fakeWriter{err: errors.New("leader not available")}}

	err := p.PublishRaw(context.Background(), "k", []byte("{"))

	assert.ErrorContains(t, err, "failed to write message")
}
