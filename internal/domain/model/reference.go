package model

// Customer, Payment and Product are owned by other services; orders only reference them.

type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type Payment struct {
	ID          int64  `json:"id"`
	Method      string `json:"method"`
	AmountMinor int64  `json:"amount_minor"`
}

type Product struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	ProducerID     *int64 `json:"producer_id,omitempty"`
	SupplierID     *int64 `json:"supplier_id,omitempty"`
}
