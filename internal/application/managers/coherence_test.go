package managers

import (
	"context"
	"testing"

	"grocery/internal/application/validation"
	"grocery/internal/domain/model"
	"grocery/internal/infrastructure/cache"
	"grocery/internal/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryStack struct {
	refs      *memory.ReferenceStore
	cache     *cache.MemoryCache
	orders    *OrderManager
	producers *ProducerManager
	suppliers *SupplierManager
}

func newMemoryStack(t *testing.T) memoryStack {
	t.Helper()

	logger := zap.NewNop()
	refs := memory.NewReferenceStore()
	c := cache.NewMemoryCache(logger)
	v := validation.NewValidator()
	return memoryStack{
		refs:      refs,
		cache:     c,
		orders:    NewOrderManager(memory.NewOrderRepository(refs), refs, refs, refs, c, v, logger),
		producers: NewProducerManager(memory.NewProducerRepository(refs), c, v, logger),
		suppliers: NewSupplierManager(memory.NewSupplierRepository(refs), c, v, logger),
	}
}

func TestProducers_CaseInsensitiveNames(t *testing.T) {
	t.Parallel()

	s := newMemoryStack(t)
	ctx := context.Background()

	_, err := s.producers.Add(ctx, model.CreateProducerRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = s.producers.Add(ctx, model.CreateProducerRequest{Name: "acme"})
	require.Error(t, err)
	assert.Equal(t, model.KindDuplicate, model.KindOf(err))

	all, err := s.producers.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all.Data, 1)
	assert.Equal(t, "Acme", all.Data[0].Name)
}

func TestProducers_ReadsAfterWritesAreFresh(t *testing.T) {
	t.Parallel()

	s := newMemoryStack(t)
	ctx := context.Background()

	_, err := s.producers.Add(ctx, model.CreateProducerRequest{Name: "Old"})
	require.NoError(t, err)

	before, err := s.producers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Old", before.Data.Name)
	_, err = s.producers.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, s.cache.Len("producer"))
	require.Equal(t, 1, s.cache.Len("producer:list"))

	_, err = s.producers.Update(ctx, model.UpdateProducerRequest{Name: "New"}, 1)
	require.NoError(t, err)

	after, err := s.producers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "New", after.Data.Name)

	all, err := s.producers.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", all.Data[0].Name)

	_, err = s.producers.Delete(ctx, model.DeleteRequest{ID: 1})
	require.NoError(t, err)

	_, err = s.producers.GetByID(ctx, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)

	all, err = s.producers.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all.Data)
}

// interleavedProducers runs onLoad once, after FindByID has read its snapshot
// and before the snapshot is returned.
type interleavedProducers struct {
	*memory.ProducerRepository
	onLoad func(ctx context.Context)
}

func (r *interleavedProducers) FindByID(ctx context.Context, id int64) (*model.Producer, error) {
	p, err := r.ProducerRepository.FindByID(ctx, id)
	if hook := r.onLoad; hook != nil {
		r.onLoad = nil
		hook(ctx)
	}
	return p, err
}

func TestProducers_UpdateDuringLoadIsNotMasked(t *testing.T) {
	t.Parallel()

	logger := zap.NewNop()
	refs := memory.NewReferenceStore()
	c := cache.NewMemoryCache(logger)
	repo := &interleavedProducers{ProducerRepository: memory.NewProducerRepository(refs)}
	producers := NewProducerManager(repo, c, validation.NewValidator(), logger)
	ctx := context.Background()

	_, err := producers.Add(ctx, model.CreateProducerRequest{Name: "Old"})
	require.NoError(t, err)

	repo.onLoad = func(ctx context.Context) {
		_, err := producers.Update(ctx, model.UpdateProducerRequest{Name: "New"}, 1)
		require.NoError(t, err)
	}

	stale, err := producers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Old", stale.Data.Name)
	assert.Zero(t, c.Len("producer"))

	fresh, err := producers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "New", fresh.Data.Name)
	assert.Equal(t, 1, c.Len("producer"))

	cached, err := producers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "New", cached.Data.Name)
}

func TestProducers_AddInvalidatesListings(t *testing.T) {
	t.Parallel()

	s := newMemoryStack(t)
	ctx := context.Background()

	empty, err := s.producers.GetListByPaginationAndSorting(ctx, 0, 10, "name")
	require.NoError(t, err)
	assert.Empty(t, empty.Data)

	for _, name := range []string{"Beta", "Alpha"} {
		_, err := s.producers.Add(ctx, model.CreateProducerRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := s.producers.GetListByPaginationAndSorting(ctx, 0, 10, "name")
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Alpha", page.Data[0].Name)
	assert.Equal(t, "Producers paginated and sorted by name", page.Message)
}

func TestProducers_UpdateKeepsOwnName(t *testing.T) {
	t.Parallel()

	s := newMemoryStack(t)
	ctx := context.Background()

	_, err := s.producers.Add(ctx, model.CreateProducerRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = s.producers.Update(ctx, model.UpdateProducerRequest{Name: "ACME"}, 1)
	require.NoError(t, err)

	got, err := s.producers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Data.Name)
}

func TestSuppliers_UniqueFields(t *testing.T) {
	t.Parallel()

	s := newMemoryStack(t)
	ctx := context.Background()

	_, err := s.suppliers.Add(ctx, model.CreateSupplierRequest{Name: "Fresh", Email: "a@fresh.io", PhoneNumber: "555-0100"})
	require.NoError(t, err)

	_, err = s.suppliers.Add(ctx, model.CreateSupplierRequest{Name: "Other", Email: "a@fresh.io", PhoneNumber: "555-0199"})
	assert.EqualError(t, err, model.MsgEmailExists)

	_, err = s.suppliers.Add(ctx, model.CreateSupplierRequest{Name: "Fresh", Email: "b@fresh.io", PhoneNumber: "555-0199"})
	assert.EqualError(t, err, model.MsgSupplierNameExists)

	_, err = s.suppliers.Add(ctx, model.CreateSupplierRequest{Name: "Other", Email: "b@fresh.io", PhoneNumber: "555-0100"})
	assert.EqualError(t, err, model.MsgPhoneNumberExists)

	_, err = s.suppliers.Update(ctx, model.UpdateSupplierRequest{Name: "Fresh", Email: "a@fresh.io", PhoneNumber: "555-0101"}, 1)
	require.NoError(t, err)

	got, err := s.suppliers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "555-0101", got.Data.PhoneNumber)
}

func TestOrders_Lifecycle(t *testing.T) {
	t.Parallel()

	s := newMemoryStack(t)
	ctx := context.Background()

	customerID := s.refs.AddCustomer(model.Customer{FirstName: "Ada", LastName: "L", Email: "ada@example.com"})
	paymentID := s.refs.AddPayment(model.Payment{Method: "card", AmountMinor: 1200})
	breadID := s.refs.AddProduct(model.Product{Name: "Bread", UnitPriceMinor: 300})
	milkID := s.refs.AddProduct(model.Product{Name: "Milk", UnitPriceMinor: 150})

	_, err := s.orders.Add(ctx, model.CreateOrderRequest{CustomerID: customerID, PaymentID: paymentID, ProductIDs: []int64{breadID}})
	require.NoError(t, err)

	_, err = s.orders.Add(ctx, model.CreateOrderRequest{CustomerID: customerID + 100, PaymentID: paymentID})
	assert.EqualError(t, err, model.MsgCustomerIDNotFound)

	_, err = s.orders.Add(ctx, model.CreateOrderRequest{CustomerID: customerID, PaymentID: paymentID, ProductIDs: []int64{999}})
	assert.EqualError(t, err, model.MsgProductIDNotFound)

	first, err := s.orders.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{breadID}, first.Data.ProductIDs)
	assert.Equal(t, model.OrderStatusPending, first.Data.Status)

	_, err = s.orders.Update(ctx, model.UpdateOrderRequest{
		Status:     model.OrderStatusShipped,
		CustomerID: customerID,
		PaymentID:  paymentID,
		ProductIDs: []int64{breadID, milkID},
	}, 1)
	require.NoError(t, err)

	updated, err := s.orders.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, updated.Data.Status)
	assert.Equal(t, []int64{breadID, milkID}, updated.Data.ProductIDs)

	warmed, err := s.orders.WarmUp(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, warmed)

	_, err = s.orders.Delete(ctx, model.DeleteRequest{ID: 1})
	require.NoError(t, err)

	_, err = s.orders.GetByID(ctx, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = s.orders.Update(ctx, model.UpdateOrderRequest{CustomerID: customerID, PaymentID: paymentID}, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestOrders_PaginationBounds(t *testing.T) {
	t.Parallel()

	s := newMemoryStack(t)
	ctx := context.Background()

	customerID := s.refs.AddCustomer(model.Customer{FirstName: "Bo"})
	paymentID := s.refs.AddPayment(model.Payment{Method: "cash"})
	for range 5 {
		_, err := s.orders.Add(ctx, model.CreateOrderRequest{CustomerID: customerID, PaymentID: paymentID})
		require.NoError(t, err)
	}

	page, err := s.orders.GetListByPagination(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Data[0].ID)

	last, err := s.orders.GetListByPagination(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, last.Data, 1)

	beyond, err := s.orders.GetListByPagination(ctx, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Data)

	_, err = s.orders.GetListByPagination(ctx, -1, 2)
	assert.ErrorIs(t, err, model.ErrInvalidPage)
}
