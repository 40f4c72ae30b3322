package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

const selectOrders = `
        SELECT o.id, o.created_date, o.delivered_date, o.status,
               c.id, c.first_name, c.last_name, c.email,
               p.id, p.method, p.amount_minor
        FROM orders o
        JOIN customers c ON c.id = o.customer_id
        JOIN payments p ON p.id = o.payment_id`

type OrderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(db *sql.DB, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{db: db, logger: logger}
}

func (r *OrderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return exists, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	rows, err := r.db.QueryContext(ctx, selectOrders+` WHERE o.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, model.ErrRecordNotFound
	}
	if err := r.attachProducts(ctx, orders); err != nil {
		return nil, err
	}
	return orders[0], nil
}

// FindAll loads one listing in two queries: orders with their customer and
// payment, then the products of every returned order.
func (r *OrderRepository) FindAll(ctx context.Context, q model.ListQuery) ([]*model.Order, error) {
	clause, args := listClause(q, orderSortColumns, "o.id", nil)
	rows, err := r.db.QueryContext(ctx, selectOrders+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders, err := r.scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachProducts(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) scanOrders(rows *sql.Rows) ([]*model.Order, error) {
	defer closeRows(rows, r.logger)

	orders := make([]*model.Order, 0)
	for rows.Next() {
		var (
			o         model.Order
			delivered sql.NullTime
			status    string
		)
		if err := rows.Scan(
			&o.ID, &o.CreatedDate, &delivered, &status,
			&o.Customer.ID, &o.Customer.FirstName, &o.Customer.LastName, &o.Customer.Email,
			&o.Payment.ID, &o.Payment.Method, &o.Payment.AmountMinor,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if delivered.Valid {
			t := delivered.Time
			o.DeliveredDate = &t
		}
		o.Status = model.OrderStatus(status)
		o.Products = []model.Product{}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) attachProducts(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[int64]*model.Order, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT op.order_id, pr.id, pr.name, pr.unit_price_minor, pr.producer_id, pr.supplier_id
        FROM order_products op
        JOIN products pr ON pr.id = op.product_id
        WHERE op.order_id = ANY($1)
        ORDER BY op.order_id, op.position`, ids)
	if err != nil {
		return fmt.Errorf("failed to query order products: %w", err)
	}
	defer closeRows(rows, r.logger)

	for rows.Next() {
		var (
			orderID              int64
			p                    model.Product
			producerID, supplier sql.NullInt64
		)
		if err := rows.Scan(&orderID, &p.ID, &p.Name, &p.UnitPriceMinor, &producerID, &supplier); err != nil {
			return fmt.Errorf("failed to scan order product: %w", err)
		}
		p.ProducerID = int64Ptr(producerID)
		p.SupplierID = int64Ptr(supplier)
		if o, ok := byID[orderID]; ok {
			o.Products = append(o.Products, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order products: %w", err)
	}
	return nil
}

func (r *OrderRepository) Save(ctx context.Context, order *model.Order) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			rollback(tx, r.logger)
		}
	}()

	if order.ID == 0 {
		err = tx.QueryRowContext(ctx, `
            INSERT INTO orders (created_date, delivered_date, status, customer_id, payment_id)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id`,
			order.CreatedDate, order.DeliveredDate, string(order.Status), order.Customer.ID, order.Payment.ID,
		).Scan(&order.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
	} else {
		var res sql.Result
		res, err = tx.ExecContext(ctx, `
            UPDATE orders
            SET created_date = $1, delivered_date = $2, status = $3, customer_id = $4, payment_id = $5
            WHERE id = $6`,
			order.CreatedDate, order.DeliveredDate, string(order.Status), order.Customer.ID, order.Payment.ID, order.ID)
		if err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		var affected int64
		if affected, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			err = model.ErrRecordNotFound
			return err
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM order_products WHERE order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("failed to clear order products: %w", err)
		}
	}

	for i, p := range order.Products {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO order_products (order_id, product_id, position)
            VALUES ($1, $2, $3)`,
			order.ID, p.ID, i)
		if err != nil {
			return fmt.Errorf("failed to insert order product: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}
