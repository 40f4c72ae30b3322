package usecases

import (
	"context"
	"errors"
	"testing"

	"grocery/internal/domain/repository"
	"grocery/internal/domain/repository/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRestoreCacheUseCase_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMocks func(orders, producers *mocks.MockCacheWarmer, ctx context.Context)
	}{
		{
			name: "warms_every_aggregate",
			setupMocks: func(orders, producers *mocks.MockCacheWarmer, ctx context.Context) {
				orders.EXPECT().WarmUp(ctx).Return(3, nil)
				producers.EXPECT().WarmUp(ctx).Return(2, nil)
			},
		},
		{
			name: "empty_database",
			setupMocks: func(orders, producers *mocks.MockCacheWarmer, ctx context.Context) {
				orders.EXPECT().WarmUp(ctx).Return(0, nil)
				producers.EXPECT().WarmUp(ctx).Return(0, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orders := mocks.NewMockCacheWarmer(ctrl)
			producers := mocks.NewMockCacheWarmer(ctrl)
			ctx := context.Background()
			tt.setupMocks(orders, producers, ctx)

			uc := NewRestoreCacheUseCase(map[string]repository.CacheWarmer{
				"order":    orders,
				"producer": producers,
			}, zap.NewNop())
			err := uc.Execute(ctx)

			assert.NoError(t, err)
		})
	}
}

func TestRestoreCacheUseCase_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mocks.NewMockCacheWarmer(ctrl)
	suppliers := mocks.NewMockCacheWarmer(ctrl)
	ctx := context.Background()

	orders.EXPECT().WarmUp(ctx).Return(0, errors.New("database connection lost"))
	suppliers.EXPECT().WarmUp(ctx).Return(4, nil)

	uc := NewRestoreCacheUseCase(map[string]repository.CacheWarmer{
		"order":    orders,
		"supplier": suppliers,
	}, zap.NewNop())
	err := uc.Execute(ctx)

	assert.EqualError(t, err, "failed to restore order cache: database connection lost")
}
