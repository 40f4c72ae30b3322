package usecases

import (
	"context"
	"fmt"

	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

type RestoreCacheUseCase struct {
	warmers map[string]repository.CacheWarmer
	logger  *zap.Logger
}

func NewRestoreCacheUseCase(warmers map[string]repository.CacheWarmer, logger *zap.Logger) *RestoreCacheUseCase {
	return &RestoreCacheUseCase{warmers: warmers, logger: logger}
}

// Execute warms every aggregate. A failing aggregate does not stop the others;
// the first failure is returned once all of them ran.
func (uc *RestoreCacheUseCase) Execute(ctx context.Context) error {
	var firstErr error
	total := 0
	for name, warmer := range uc.warmers {
		count, err := warmer.WarmUp(ctx)
		if err != nil {
			uc.logger.Error("Failed to restore cache", zap.Error(err), zap.String("aggregate", name))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to restore %s cache: %w", name, err)
			}
			continue
		}
		uc.logger.Info("Aggregate cache restored", zap.String("aggregate", name), zap.Int("count", count))
		total += count
	}

	uc.logger.Info("Cache restored", zap.Int("success_count", total), zap.Int("aggregates", len(uc.warmers)))
	return firstErr
}
