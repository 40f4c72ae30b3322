package model

// ListQuery describes how a listing is fetched from a store.
// A zero value means every row in id order.
type ListQuery struct {
	SortBy   string
	Paginate bool
	PageNo   int
	PageSize int
}

func (q ListQuery) Offset() int {
	return q.PageNo * q.PageSize
}

// Declared sortable attributes per aggregate. Names double as column names.
var (
	OrderSortFields = map[string]bool{
		"id":             true,
		"created_date":   true,
		"delivered_date": true,
		"status":         true,
		"customer_id":    true,
		"payment_id":     true,
	}

	ProducerSortFields = map[string]bool{
		"id":   true,
		"name": true,
	}

	SupplierSortFields = map[string]bool{
		"id":           true,
		"name":         true,
		"email":        true,
		"phone_number": true,
	}
)

// DeleteRequest identifies the record a delete operation targets.
type DeleteRequest struct {
	ID int64 `json:"id" validate:"min=1"`
}
