package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

// IngestOrderUseCase turns one queued message into an order.
type IngestOrderUseCase struct {
	creator repository.OrderCreator
	logger  *zap.Logger
}

func NewIngestOrderUseCase(creator repository.OrderCreator, logger *zap.Logger) *IngestOrderUseCase {
	return &IngestOrderUseCase{creator: creator, logger: logger}
}

// Execute decodes payload as a CreateOrderRequest and adds it. A payload that is
// not valid JSON fails with an INVALID_INPUT business error.
func (uc *IngestOrderUseCase) Execute(ctx context.Context, payload []byte) (model.Result, error) {
	var req model.CreateOrderRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		uc.logger.Warn("Failed to decode order message", zap.Error(err), zap.ByteString("message", payload))
		return model.Result{}, fmt.Errorf("%w: %w",
			model.NewBusinessError(model.KindInvalidInput, "Invalid request: malformed order message"), err)
	}

	res, err := uc.creator.Add(ctx, req)
	if err != nil {
		return model.Result{}, err
	}
	uc.logger.Info("Order ingested", zap.Int64("customer_id", req.CustomerID), zap.Int64("payment_id", req.PaymentID))
	return res, nil
}
