package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/payments-service/mocks"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

func TestGetPayment_Execute(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepository(t)
		payments.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Payment{
			ID:            5,
			CheckoutID:    "chk-1",
			OrderID:       models.Int64Ptr(42),
			PaymentMethod: models.PaymentMethodCOD,
			Status:        models.PaymentStatusCompleted,
			Amount:        decimal.NewFromInt(20),
			PaymentFee:    decimal.Zero,
			CreatedAt:     createdAt,
		}, nil).Once()

		result, err := NewGetPayment(payments).Execute(context.Background(), &GetPaymentQuery{PaymentID: 5})

		require.NoError(t, err)
		assert.Equal(t, int64(5), result.PaymentID)
		assert.Equal(t, int64(42), *result.OrderID)
		assert.Equal(t, "COMPLETED", result.PaymentStatus)
		assert.Equal(t, "2026-03-01T12:00:00Z", result.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepository(t)
		payments.EXPECT().FindByID(mock.Anything, int64(6)).Return(nil, nil).Once()

		_, err := NewGetPayment(payments).Execute(context.Background(), &GetPaymentQuery{PaymentID: 6})

		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
		assert.Equal(t, "Payment 6 not found", err.Error())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := NewGetPayment(mocks.NewMockPaymentRepository(t)).Execute(context.Background(), &GetPaymentQuery{})
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	})
}
