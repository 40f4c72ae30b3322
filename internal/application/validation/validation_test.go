package validation

import (
	"testing"
	"time"

	"grocery/internal/domain/model"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderRequest(t *testing.T) model.CreateOrderRequest {
	t.Helper()

	return model.CreateOrderRequest{
		CreatedDate: time.Now().UTC(),
		Status:      model.OrderStatusPending,
		CustomerID:  int64(gofakeit.Number(1, 1000)),
		PaymentID:   int64(gofakeit.Number(1, 1000)),
		ProductIDs:  []int64{int64(gofakeit.Number(1, 100)), int64(gofakeit.Number(101, 200))},
	}
}

func validSupplierRequest(t *testing.T) model.CreateSupplierRequest {
	t.Helper()

	return model.CreateSupplierRequest{
		Name:        gofakeit.Company(),
		Email:       gofakeit.Email(),
		PhoneNumber: gofakeit.Phone(),
	}
}

func TestValidateRequest_Success(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	assert.NoError(t, v.ValidateRequest(validOrderRequest(t)))
	assert.NoError(t, v.ValidateRequest(validSupplierRequest(t)))
	assert.NoError(t, v.ValidateRequest(model.CreateProducerRequest{Name: gofakeit.Company()}))
	assert.NoError(t, v.ValidateRequest(model.DeleteRequest{ID: 1}))
}

func TestValidateRequest_OrderErrors(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	tests := []struct {
		name          string
		mutate        func(*model.CreateOrderRequest)
		expectedField string
	}{
		{
			name:          "zero_customer",
			mutate:        func(r *model.CreateOrderRequest) { r.CustomerID = 0 },
			expectedField: "CustomerID",
		},
		{
			name:          "negative_payment",
			mutate:        func(r *model.CreateOrderRequest) { r.PaymentID = -4 },
			expectedField: "PaymentID",
		},
		{
			name:          "unknown_status",
			mutate:        func(r *model.CreateOrderRequest) { r.Status = "LOST" },
			expectedField: "Status",
		},
		{
			name:          "non_positive_product",
			mutate:        func(r *model.CreateOrderRequest) { r.ProductIDs = []int64{3, 0} },
			expectedField: "ProductIDs[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validOrderRequest(t)
			tt.mutate(&req)

			err := v.ValidateRequest(req)

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Equal(t, tt.expectedField, validationErrs[0].Field())
		})
	}
}

func TestValidateRequest_SupplierAndDelete(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	req := validSupplierRequest(t)
	req.Email = "not-an-email"
	err := v.ValidateRequest(req)
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidInput, model.KindOf(err))

	var be *model.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Contains(t, be.Message, "Email failed on email")

	err = v.ValidateRequest(model.DeleteRequest{ID: 0})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	err = v.ValidateRequest(model.CreateProducerRequest{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestValidateRequest_NotAStruct(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	err := v.ValidateRequest("plain string")

	require.Error(t, err)
	var invalidErr *validator.InvalidValidationError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, model.ErrorKind(""), model.KindOf(err))
}
