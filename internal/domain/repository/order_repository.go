package repository

import (
	"context"

	"grocery/internal/domain/model"
)

//go:generate mockgen -source=order_repository.go -destination=mocks/order_repository.go -package=mocks

// OrderRepository is the order store. FindByID returns model.ErrRecordNotFound when absent.
// Save inserts when order.ID is zero and assigns the new id, otherwise it rewrites the row.
type OrderRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindAll(ctx context.Context, query model.ListQuery) ([]*model.Order, error)
	Save(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
}

// CustomerLookup, PaymentLookup and ProductLookup resolve references into other aggregates.
// Absence is reported as a nil record (or a shorter slice), never as an error.
type CustomerLookup interface {
	GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error)
}

type PaymentLookup interface {
	GetPaymentByID(ctx context.Context, id int64) (*model.Payment, error)
}

type ProductLookup interface {
	GetProductsByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
}
