package repository

import (
	"context"

	"grocery/internal/domain/model"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager.go -package=mocks

// AggregateManager is the operation surface every aggregate exposes to transports.
type AggregateManager[C, U, R any] interface {
	Add(ctx context.Context, req C) (model.Result, error)
	Update(ctx context.Context, req U, id int64) (model.Result, error)
	Delete(ctx context.Context, req model.DeleteRequest) (model.Result, error)
	GetByID(ctx context.Context, id int64) (model.DataResult[R], error)
	GetAll(ctx context.Context) (model.DataResult[[]R], error)
	GetListBySorting(ctx context.Context, sortBy string) (model.DataResult[[]R], error)
	GetListByPagination(ctx context.Context, pageNo, pageSize int) (model.DataResult[[]R], error)
	GetListByPaginationAndSorting(ctx context.Context, pageNo, pageSize int, sortBy string) (model.DataResult[[]R], error)
}

// OrderCreator is what the Kafka intake needs from the order manager.
type OrderCreator interface {
	Add(ctx context.Context, req model.CreateOrderRequest) (model.Result, error)
}

// CacheWarmer preloads one aggregate into the cache and reports how many records it stored.
type CacheWarmer interface {
	WarmUp(ctx context.Context) (int, error)
}
