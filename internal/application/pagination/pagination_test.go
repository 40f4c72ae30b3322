package pagination

import (
	"testing"

	"grocery/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagedSorted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pageNo   int
		pageSize int
		sortBy   string
		wantErr  error
		want     model.ListQuery
	}{
		{
			name:     "valid",
			pageNo:   2,
			pageSize: 10,
			sortBy:   "name",
			want:     model.ListQuery{SortBy: "name", Paginate: true, PageNo: 2, PageSize: 10},
		},
		{name: "negative_page", pageNo: -1, pageSize: 10, sortBy: "name", wantErr: model.ErrInvalidPage},
		{name: "zero_page_size", pageNo: 0, pageSize: 0, sortBy: "name", wantErr: model.ErrInvalidPageSize},
		{name: "unknown_field", pageNo: 0, pageSize: 1, sortBy: "nam", wantErr: model.ErrInvalidSortField},
		{name: "page_checked_before_size", pageNo: -1, pageSize: 0, sortBy: "bogus", wantErr: model.ErrInvalidPage},
		{name: "size_checked_before_field", pageNo: 0, pageSize: 0, sortBy: "bogus", wantErr: model.ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := PagedSorted(tt.pageNo, tt.pageSize, tt.sortBy, model.ProducerSortFields)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
			assert.Equal(t, 20, q.Offset())
		})
	}
}

func TestValidateSortField_IsStructural(t *testing.T) {
	t.Parallel()

	// Substrings of a declared name are not attributes.
	for _, field := range []string{"", "i", "phone", "Name", "name; DROP TABLE suppliers"} {
		err := ValidateSortField(field, model.SupplierSortFields)
		assert.ErrorIs(t, err, model.ErrInvalidSortField, field)
	}
	for field := range model.SupplierSortFields {
		assert.NoError(t, ValidateSortField(field, model.SupplierSortFields), field)
	}
}

func TestSortedAndPaged(t *testing.T) {
	t.Parallel()

	q, err := Sorted("status", model.OrderSortFields)
	require.NoError(t, err)
	assert.Equal(t, model.ListQuery{SortBy: "status"}, q)

	_, err = Sorted("products", model.OrderSortFields)
	assert.ErrorIs(t, err, model.ErrInvalidSortField)

	q, err = Paged(0, 1)
	require.NoError(t, err)
	assert.Equal(t, model.ListQuery{Paginate: true, PageNo: 0, PageSize: 1}, q)
	assert.Equal(t, model.KindInvalidPageSize, model.KindOf(func() error { _, err := Paged(0, 0); return err }()))
}

func TestValidateBounds(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePageNo(0))
	assert.ErrorIs(t, ValidatePageNo(-1), model.ErrInvalidPage)
	assert.NoError(t, ValidatePageSize(1))
	assert.ErrorIs(t, ValidatePageSize(0), model.ErrInvalidPageSize)
}
