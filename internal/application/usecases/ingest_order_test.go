package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"grocery/internal/domain/model"
	"grocery/internal/domain/repository/mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestIngestOrderUseCase_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := mocks.NewMockOrderCreator(ctrl)
	ctx := context.Background()
	req := model.CreateOrderRequest{
		Status:     model.OrderStatusPreparing,
		CustomerID: int64(gofakeit.Number(1, 500)),
		PaymentID:  int64(gofakeit.Number(1, 500)),
		ProductIDs: []int64{1, 2},
	}
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	creator.EXPECT().Add(ctx, req).Return(model.SuccessResult(model.MsgOrderCreated), nil)

	uc := NewIngestOrderUseCase(creator, zap.NewNop())
	res, err := uc.Execute(ctx, payload)

	require.NoError(t, err)
	assert.Equal(t, model.MsgOrderCreated, res.Message)
}

func TestIngestOrderUseCase_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    []byte
		setupMocks func(creator *mocks.MockOrderCreator)
		wantKind   model.ErrorKind
	}{
		{
			name:       "malformed_json",
			payload:    []byte(`{"customer_id":`),
			setupMocks: func(creator *mocks.MockOrderCreator) {},
			wantKind:   model.KindInvalidInput,
		},
		{
			name:    "business_error_passes_through",
			payload: []byte(`{"customer_id":1,"payment_id":2}`),
			setupMocks: func(creator *mocks.MockOrderCreator) {
				creator.EXPECT().Add(gomock.Any(), gomock.Any()).
					Return(model.Result{}, model.NewBusinessError(model.KindNotFound, model.MsgCustomerIDNotFound))
			},
			wantKind: model.KindNotFound,
		},
		{
			name:    "infrastructure_error",
			payload: []byte(`{"customer_id":1,"payment_id":2}`),
			setupMocks: func(creator *mocks.MockOrderCreator) {
				creator.EXPECT().Add(gomock.Any(), gomock.Any()).Return(model.Result{}, errors.New("db down"))
			},
			wantKind: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creator := mocks.NewMockOrderCreator(ctrl)
			tt.setupMocks(creator)

			uc := NewIngestOrderUseCase(creator, zap.NewNop())
			_, err := uc.Execute(context.Background(), tt.payload)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, model.KindOf(err))
		})
	}
}
