package memory

import (
	"context"
	"testing"
	"time"

	"grocery/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerRepository_ListQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProducerRepository(nil)
	for _, name := range []string{"Delta", "Alpha", "Charlie", "Bravo"} {
		require.NoError(t, repo.Save(ctx, &model.Producer{Name: name}))
	}

	tests := []struct {
		name  string
		query model.ListQuery
		want  []string
	}{
		{name: "id_order", query: model.ListQuery{}, want: []string{"Delta", "Alpha", "Charlie", "Bravo"}},
		{name: "sorted_by_name", query: model.ListQuery{SortBy: "name"}, want: []string{"Alpha", "Bravo", "Charlie", "Delta"}},
		{name: "first_page", query: model.ListQuery{Paginate: true, PageNo: 0, PageSize: 3}, want: []string{"Delta", "Alpha", "Charlie"}},
		{name: "second_page", query: model.ListQuery{Paginate: true, PageNo: 1, PageSize: 3}, want: []string{"Bravo"}},
		{name: "past_the_end", query: model.ListQuery{Paginate: true, PageNo: 5, PageSize: 3}, want: []string{}},
		{name: "page_sorted", query: model.ListQuery{SortBy: "name", Paginate: true, PageNo: 1, PageSize: 2}, want: []string{"Charlie", "Delta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			producers, err := repo.FindAll(ctx, tt.query)
			require.NoError(t, err)

			names := make([]string, 0, len(producers))
			for _, p := range producers {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestProducerRepository_NameUniquenessExcludesSelf(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProducerRepository(nil)
	producer := &model.Producer{Name: "Acme"}
	require.NoError(t, repo.Save(ctx, producer))

	taken, err := repo.ExistsByNameIgnoreCase(ctx, "ACME", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByNameIgnoreCase(ctx, "acme", producer.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestRepositories_SaveUnknownID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	refs := NewReferenceStore()

	err := NewProducerRepository(refs).Save(ctx, &model.Producer{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, model.ErrRecordNotFound)

	err = NewSupplierRepository(refs).Delete(ctx, 42)
	assert.ErrorIs(t, err, model.ErrRecordNotFound)

	_, err = NewOrderRepository(refs).FindByID(ctx, 42)
	assert.ErrorIs(t, err, model.ErrRecordNotFound)
}

func TestProducerRepository_DeleteDetachesProducts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	refs := NewReferenceStore()
	repo := NewProducerRepository(refs)

	producer := &model.Producer{Name: "Farm"}
	require.NoError(t, repo.Save(ctx, producer))
	productID := refs.AddProduct(model.Product{Name: "Milk", ProducerID: &producer.ID})

	require.NoError(t, repo.Delete(ctx, producer.ID))

	products, err := refs.GetProductsByIDs(ctx, []int64{productID})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].ProducerID)
}

func TestOrderRepository_ReadsCurrentReferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	refs := NewReferenceStore()
	customerID := refs.AddCustomer(model.Customer{FirstName: "Ada", Email: "ada@example.com"})
	paymentID := refs.AddPayment(model.Payment{Method: "card", AmountMinor: 1500})
	productID := refs.AddProduct(model.Product{Name: "Bread", UnitPriceMinor: 300})

	repo := NewOrderRepository(refs)
	order := &model.Order{
		CreatedDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:      model.OrderStatusPending,
		Customer:    model.Customer{ID: customerID},
		Payment:     model.Payment{ID: paymentID},
		Products:    []model.Product{{ID: productID}},
	}
	require.NoError(t, repo.Save(ctx, order))
	require.NotZero(t, order.ID)

	refs.AddCustomer(model.Customer{ID: customerID, FirstName: "Ada", Email: "ada@new.example.com"})

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@new.example.com", got.Customer.Email)
	assert.Equal(t, "Bread", got.Products[0].Name)
	assert.Equal(t, int64(1500), got.Payment.AmountMinor)
}

func TestOrderRepository_SortByDeliveredDatePutsMissingLast(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	refs := NewReferenceStore()
	repo := NewOrderRepository(refs)

	later := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, delivered := range []*time.Time{nil, &later, &earlier} {
		require.NoError(t, repo.Save(ctx, &model.Order{DeliveredDate: delivered, Status: model.OrderStatusPending}))
	}

	orders, err := repo.FindAll(ctx, model.ListQuery{SortBy: "delivered_date"})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{orders[0].ID, orders[1].ID, orders[2].ID})
}
