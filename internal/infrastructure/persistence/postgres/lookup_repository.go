package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

// LookupRepository resolves customers, payments and products for order rules.
// Missing rows are reported as nil records, not errors.
type LookupRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var (
	_ repository.CustomerLookup = (*LookupRepository)(nil)
	_ repository.PaymentLookup  = (*LookupRepository)(nil)
	_ repository.ProductLookup  = (*LookupRepository)(nil)
)

func NewLookupRepository(db *sql.DB, logger *zap.Logger) *LookupRepository {
	return &LookupRepository{db: db, logger: logger}
}

func (r *LookupRepository) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}

func (r *LookupRepository) GetPaymentByID(ctx context.Context, id int64) (*model.Payment, error) {
	var p model.Payment
	err := r.db.QueryRowContext(ctx,
		`SELECT id, method, amount_minor FROM payments WHERE id = $1`, id,
	).Scan(&p.ID, &p.Method, &p.AmountMinor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

func (r *LookupRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, unit_price_minor, producer_id, supplier_id
        FROM products
        WHERE id = ANY($1)
        ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer closeRows(rows, r.logger)

	products := make([]model.Product, 0, len(ids))
	for rows.Next() {
		var (
			p                      model.Product
			producerID, supplierID sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPriceMinor, &producerID, &supplierID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.ProducerID = int64Ptr(producerID)
		p.SupplierID = int64Ptr(supplierID)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// InsertCustomer, InsertPayment and InsertProduct fill the reference tables; used by the seeder.
func (r *LookupRepository) InsertCustomer(ctx context.Context, c *model.Customer) error {
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO customers (first_name, last_name, email)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE SET first_name = EXCLUDED.first_name
        RETURNING id`,
		c.FirstName, c.LastName, c.Email,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *LookupRepository) InsertPayment(ctx context.Context, p *model.Payment) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO payments (method, amount_minor) VALUES ($1, $2) RETURNING id`,
		p.Method, p.AmountMinor,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *LookupRepository) InsertProduct(ctx context.Context, p *model.Product) error {
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO products (name, unit_price_minor, producer_id, supplier_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		p.Name, p.UnitPriceMinor, nullInt64(p.ProducerID), nullInt64(p.SupplierID),
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}
