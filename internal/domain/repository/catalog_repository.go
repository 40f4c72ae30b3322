package repository

import (
	"context"

	"grocery/internal/domain/model"
)

//go:generate mockgen -source=catalog_repository.go -destination=mocks/catalog_repository.go -package=mocks

// ProducerRepository stores producers. excludeID skips one record in the uniqueness
// predicate so an update can keep its own name; pass 0 to check every record.
type ProducerRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string, excludeID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*model.Producer, error)
	FindAll(ctx context.Context, query model.ListQuery) ([]*model.Producer, error)
	Save(ctx context.Context, producer *model.Producer) error
	Delete(ctx context.Context, id int64) error
}

type SupplierRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string, excludeID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	FindAll(ctx context.Context, query model.ListQuery) ([]*model.Supplier, error)
	Save(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id int64) error
}
