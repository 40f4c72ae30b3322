package memory

import (
	"cmp"
	"context"
	"sync"
	"time"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"
)

type storedOrder struct {
	id            int64
	createdDate   time.Time
	deliveredDate *time.Time
	status        model.OrderStatus
	customerID    int64
	paymentID     int64
	productIDs    []int64
}

var orderComparators = map[string]func(a, b storedOrder) int{
	"id":           func(a, b storedOrder) int { return cmp.Compare(a.id, b.id) },
	"created_date": func(a, b storedOrder) int { return a.createdDate.Compare(b.createdDate) },
	"delivered_date": func(a, b storedOrder) int {
		return compareOptionalTime(a.deliveredDate, b.deliveredDate)
	},
	"status":      func(a, b storedOrder) int { return cmp.Compare(a.status, b.status) },
	"customer_id": func(a, b storedOrder) int { return cmp.Compare(a.customerID, b.customerID) },
	"payment_id":  func(a, b storedOrder) int { return cmp.Compare(a.paymentID, b.paymentID) },
}

// compareOptionalTime puts missing values last, matching ascending NULLS LAST.
func compareOptionalTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

// OrderRepository keeps only reference ids and expands them on every read.
type OrderRepository struct {
	mu     sync.RWMutex
	items  map[int64]storedOrder
	nextID int64
	refs   *ReferenceStore
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(refs *ReferenceStore) *OrderRepository {
	return &OrderRepository{items: make(map[int64]storedOrder), refs: refs}
}

func (r *OrderRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int64) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return r.expand(o), nil
}

func (r *OrderRepository) FindAll(_ context.Context, q model.ListQuery) ([]*model.Order, error) {
	r.mu.RLock()
	rows := make([]storedOrder, 0, len(r.items))
	for _, o := range r.items {
		rows = append(rows, o)
	}
	r.mu.RUnlock()

	rows = applyQuery(rows, q, func(o storedOrder) int64 { return o.id }, orderComparators)
	out := make([]*model.Order, 0, len(rows))
	for _, o := range rows {
		out = append(out, r.expand(o))
	}
	return out, nil
}

func (r *OrderRepository) Save(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	} else if _, ok := r.items[order.ID]; !ok {
		return model.ErrRecordNotFound
	}

	productIDs := make([]int64, 0, len(order.Products))
	for _, p := range order.Products {
		productIDs = append(productIDs, p.ID)
	}
	r.items[order.ID] = storedOrder{
		id:            order.ID,
		createdDate:   order.CreatedDate,
		deliveredDate: order.DeliveredDate,
		status:        order.Status,
		customerID:    order.Customer.ID,
		paymentID:     order.Payment.ID,
		productIDs:    productIDs,
	}
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return model.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *OrderRepository) expand(o storedOrder) *model.Order {
	customer, payment, products := r.refs.resolve(o.customerID, o.paymentID, o.productIDs)
	return &model.Order{
		ID:            o.id,
		CreatedDate:   o.createdDate,
		DeliveredDate: o.deliveredDate,
		Status:        o.status,
		Customer:      customer,
		Payment:       payment,
		Products:      products,
	}
}
