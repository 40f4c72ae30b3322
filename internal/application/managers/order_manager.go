package managers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery/internal/application/pagination"
	"grocery/internal/application/rules"
	"grocery/internal/application/validation"
	"grocery/internal/domain/model"
	"grocery/internal/domain/repository"

	"go.uber.org/zap"
)

const orderNamespace = "order"

type OrderManager struct {
	orderRepo repository.OrderRepository
	customers repository.CustomerLookup
	payments  repository.PaymentLookup
	products  repository.ProductLookup
	cache     coordinator
	validator *validation.Validator
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderManager(
	orderRepo repository.OrderRepository,
	customers repository.CustomerLookup,
	payments repository.PaymentLookup,
	products repository.ProductLookup,
	cache repository.Cache,
	validator *validation.Validator,
	logger *zap.Logger,
) *OrderManager {
	return &OrderManager{
		orderRepo: orderRepo,
		customers: customers,
		payments:  payments,
		products:  products,
		cache:     newCoordinator(cache, orderNamespace, logger),
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

var _ repository.AggregateManager[model.CreateOrderRequest, model.UpdateOrderRequest, model.OrderResponse] = (*OrderManager)(nil)

// references holds the records an order points to once the rules resolved them.
type references struct {
	customer *model.Customer
	payment  *model.Payment
	products []model.Product
}

func (m *OrderManager) Add(ctx context.Context, req model.CreateOrderRequest) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		m.logger.Warn("Order request rejected", zap.Error(err))
		return model.Result{}, err
	}

	var refs references
	if err := rules.Run(ctx,
		m.customerExists(req.CustomerID, &refs),
		m.paymentExists(req.PaymentID, &refs),
		m.productsExist(req.ProductIDs, &refs),
	); err != nil {
		return model.Result{}, err
	}

	order := m.buildOrder(req.CreatedDate, req.DeliveredDate, req.Status, refs)
	if err := m.orderRepo.Save(ctx, order); err != nil {
		m.logger.Error("Failed to save order", zap.Error(err), zap.Int64("customer_id", req.CustomerID))
		return model.Result{}, fmt.Errorf("failed to save order: %w", err)
	}
	if err := m.cache.evictAll(ctx); err != nil {
		m.logger.Error("Failed to invalidate order cache", zap.Error(err), zap.Int64("order_id", order.ID))
		return model.Result{}, err
	}

	m.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", req.CustomerID),
		zap.Int64("payment_id", req.PaymentID),
		zap.Int64s("product_ids", req.ProductIDs))
	return model.SuccessResult(model.MsgOrderCreated), nil
}

func (m *OrderManager) Update(ctx context.Context, req model.UpdateOrderRequest, id int64) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		m.logger.Warn("Order request rejected", zap.Error(err), zap.Int64("order_id", id))
		return model.Result{}, err
	}

	var refs references
	if err := rules.Run(ctx,
		m.orderExists(id),
		m.customerExists(req.CustomerID, &refs),
		m.paymentExists(req.PaymentID, &refs),
		m.productsExist(req.ProductIDs, &refs),
	); err != nil {
		return model.Result{}, err
	}

	order := m.buildOrder(req.CreatedDate, req.DeliveredDate, req.Status, refs)
	order.ID = id
	if err := m.orderRepo.Save(ctx, order); err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return model.Result{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		m.logger.Error("Failed to update order", zap.Error(err), zap.Int64("order_id", id))
		return model.Result{}, fmt.Errorf("failed to update order: %w", err)
	}
	if err := m.cache.evictRecord(ctx, id); err != nil {
		m.logger.Error("Failed to invalidate order cache", zap.Error(err), zap.Int64("order_id", id))
		return model.Result{}, err
	}

	m.logger.Info("Order updated",
		zap.Int64("order_id", id),
		zap.Int64("customer_id", req.CustomerID),
		zap.Int64("payment_id", req.PaymentID),
		zap.Int64s("product_ids", req.ProductIDs))
	return model.SuccessResult(model.MsgOrderUpdated), nil
}

func (m *OrderManager) Delete(ctx context.Context, req model.DeleteRequest) (model.Result, error) {
	if err := m.validator.ValidateRequest(req); err != nil {
		return model.Result{}, err
	}
	if err := rules.Run(ctx, m.orderExists(req.ID)); err != nil {
		return model.Result{}, err
	}

	if err := m.orderRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return model.Result{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		m.logger.Error("Failed to delete order", zap.Error(err), zap.Int64("order_id", req.ID))
		return model.Result{}, fmt.Errorf("failed to delete order: %w", err)
	}
	if err := m.cache.evictRecord(ctx, req.ID); err != nil {
		m.logger.Error("Failed to invalidate order cache", zap.Error(err), zap.Int64("order_id", req.ID))
		return model.Result{}, err
	}

	m.logger.Info("Order deleted", zap.Int64("order_id", req.ID))
	return model.SuccessResult(model.MsgOrderDeleted), nil
}

func (m *OrderManager) GetByID(ctx context.Context, id int64) (model.DataResult[model.OrderResponse], error) {
	return readThrough(ctx, m.cache, m.cache.namespace, keyByID(id),
		func(ctx context.Context) (model.DataResult[model.OrderResponse], error) {
			order, err := m.orderRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, model.ErrRecordNotFound) {
					return model.DataResult[model.OrderResponse]{}, model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
				}
				return model.DataResult[model.OrderResponse]{}, fmt.Errorf("failed to get order: %w", err)
			}
			return model.SuccessDataResult(model.NewOrderResponse(order), model.MsgOrderListed), nil
		})
}

func (m *OrderManager) GetAll(ctx context.Context) (model.DataResult[[]model.OrderResponse], error) {
	return m.list(ctx, keyAll, model.ListQuery{}, model.MsgOrdersListed)
}

func (m *OrderManager) GetListBySorting(ctx context.Context, sortBy string) (model.DataResult[[]model.OrderResponse], error) {
	q, err := pagination.Sorted(sortBy, model.OrderSortFields)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err), zap.String("sort_by", sortBy))
		return model.DataResult[[]model.OrderResponse]{}, err
	}
	return m.list(ctx, keySorted(sortBy), q, model.MsgOrdersSorted+sortBy)
}

func (m *OrderManager) GetListByPagination(ctx context.Context, pageNo, pageSize int) (model.DataResult[[]model.OrderResponse], error) {
	q, err := pagination.Paged(pageNo, pageSize)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err), zap.Int("page_no", pageNo), zap.Int("page_size", pageSize))
		return model.DataResult[[]model.OrderResponse]{}, err
	}
	return m.list(ctx, keyPaged(pageNo, pageSize), q, model.MsgOrdersPaginated)
}

func (m *OrderManager) GetListByPaginationAndSorting(ctx context.Context, pageNo, pageSize int, sortBy string) (model.DataResult[[]model.OrderResponse], error) {
	q, err := pagination.PagedSorted(pageNo, pageSize, sortBy, model.OrderSortFields)
	if err != nil {
		m.logger.Warn("Invalid listing parameters", zap.Error(err),
			zap.Int("page_no", pageNo), zap.Int("page_size", pageSize), zap.String("sort_by", sortBy))
		return model.DataResult[[]model.OrderResponse]{}, err
	}
	return m.list(ctx, keyPagedSorted(pageNo, pageSize, sortBy), q, model.MsgOrdersPagSorted+sortBy)
}

// list reads one listing. The store returns every order with its current
// references in the same query, so each row reflects the references at read time.
func (m *OrderManager) list(ctx context.Context, key string, q model.ListQuery, message string) (model.DataResult[[]model.OrderResponse], error) {
	return readThrough(ctx, m.cache, m.cache.listNamespace(), key,
		func(ctx context.Context) (model.DataResult[[]model.OrderResponse], error) {
			orders, err := m.orderRepo.FindAll(ctx, q)
			if err != nil {
				return model.DataResult[[]model.OrderResponse]{}, fmt.Errorf("failed to list orders: %w", err)
			}
			out := make([]model.OrderResponse, 0, len(orders))
			for _, o := range orders {
				out = append(out, model.NewOrderResponse(o))
			}
			return model.SuccessDataResult(out, message), nil
		})
}

// WarmUp loads the full listing and every order by id into the cache.
func (m *OrderManager) WarmUp(ctx context.Context) (int, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	warmed := 0
	for _, o := range all.Data {
		if _, err := m.GetByID(ctx, o.ID); err != nil {
			m.logger.Warn("Failed to warm order", zap.Error(err), zap.Int64("order_id", o.ID))
			continue
		}
		warmed++
	}
	return warmed, nil
}

func (m *OrderManager) buildOrder(created time.Time, delivered *time.Time, status model.OrderStatus, refs references) *model.Order {
	if created.IsZero() {
		created = m.now().UTC()
	}
	if status == "" {
		status = model.OrderStatusPending
	}
	return &model.Order{
		CreatedDate:   created,
		DeliveredDate: delivered,
		Status:        status,
		Customer:      *refs.customer,
		Payment:       *refs.payment,
		Products:      refs.products,
	}
}

func (m *OrderManager) orderExists(id int64) rules.Rule {
	return func(ctx context.Context) error {
		exists, err := m.orderRepo.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check order existence: %w", err)
		}
		if !exists {
			m.logger.Warn("Order not found", zap.Int64("order_id", id))
			return model.NewBusinessError(model.KindNotFound, model.MsgIDNotFound)
		}
		return nil
	}
}

func (m *OrderManager) customerExists(id int64, refs *references) rules.Rule {
	return func(ctx context.Context) error {
		customer, err := m.customers.GetCustomerByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get customer: %w", err)
		}
		if customer == nil {
			m.logger.Warn("Customer not found", zap.Int64("customer_id", id))
			return model.NewBusinessError(model.KindNotFound, model.MsgCustomerIDNotFound)
		}
		refs.customer = customer
		return nil
	}
}

func (m *OrderManager) paymentExists(id int64, refs *references) rules.Rule {
	return func(ctx context.Context) error {
		payment, err := m.payments.GetPaymentByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get payment: %w", err)
		}
		if payment == nil {
			m.logger.Warn("Payment not found", zap.Int64("payment_id", id))
			return model.NewBusinessError(model.KindNotFound, model.MsgPaymentIDNotFound)
		}
		refs.payment = payment
		return nil
	}
}

func (m *OrderManager) productsExist(ids []int64, refs *references) rules.Rule {
	return func(ctx context.Context) error {
		wanted := uniqueIDs(ids)
		if len(wanted) == 0 {
			refs.products = []model.Product{}
			return nil
		}
		products, err := m.products.GetProductsByIDs(ctx, wanted)
		if err != nil {
			return fmt.Errorf("failed to get products: %w", err)
		}
		found := make(map[int64]model.Product, len(products))
		for _, p := range products {
			found[p.ID] = p
		}
		resolved := make([]model.Product, 0, len(wanted))
		for _, id := range wanted {
			p, ok := found[id]
			if !ok {
				m.logger.Warn("Product not found", zap.Int64("product_id", id))
				return model.NewBusinessError(model.KindNotFound, model.MsgProductIDNotFound)
			}
			resolved = append(resolved, p)
		}
		refs.products = resolved
		return nil
	}
}

// uniqueIDs drops repeated ids and keeps the first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
