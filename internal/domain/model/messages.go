package model

// Error messages carried by business errors.
const (
	MsgIDNotFound         = "Id not found"
	MsgCustomerIDNotFound = "Customer id not found"
	MsgPaymentIDNotFound  = "Payment id not found"
	MsgProductIDNotFound  = "Product id not found"
	MsgProducerNameExists = "Producer name already exists"
	MsgSupplierNameExists = "Supplier name already exists"
	MsgEmailExists        = "Email already exists"
	MsgPhoneNumberExists  = "Phone number already exists"
	MsgPageNumberNegative = "Page number cannot be negative"
	MsgPageSizeNegative   = "Page size must be at least one"
	MsgSortFieldInvalid   = "Sort parameter is not valid"
)

// Success messages.
const (
	MsgOrderCreated    = "Order created"
	MsgOrderUpdated    = "Order updated"
	MsgOrderDeleted    = "Order deleted"
	MsgOrderListed     = "Order listed"
	MsgOrdersListed    = "Orders listed"
	MsgOrdersSorted    = "Orders sorted by "
	MsgOrdersPaginated = "Orders paginated"
	MsgOrdersPagSorted = "Orders paginated and sorted by "

	MsgProducerCreated    = "Producer created"
	MsgProducerUpdated    = "Producer updated"
	MsgProducerDeleted    = "Producer deleted"
	MsgProducerListed     = "Producer listed"
	MsgProducersListed    = "Producers listed"
	MsgProducersSorted    = "Producers sorted by "
	MsgProducersPaginated = "Producers paginated"
	MsgProducersPagSorted = "Producers paginated and sorted by "

	MsgSupplierCreated    = "Supplier created"
	MsgSupplierUpdated    = "Supplier updated"
	MsgSupplierDeleted    = "Supplier deleted"
	MsgSupplierListed     = "Supplier listed"
	MsgSuppliersListed    = "Suppliers listed"
	MsgSuppliersSorted    = "Suppliers sorted by "
	MsgSuppliersPaginated = "Suppliers paginated"
	MsgSuppliersPagSorted = "Suppliers paginated and sorted by "
)
