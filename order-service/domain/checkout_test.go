package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

func item(productID int64, quantity int32, price string) CheckoutItem {
	return CheckoutItem{
		ProductID:    productID,
		ProductName:  "product",
		Quantity:     quantity,
		ProductPrice: decimal.RequireFromString(price),
	}
}

func TestNewCheckout(t *testing.T) {
	checkout, err := NewCheckout("buyer@example.com", "leave at door", "SUMMER", "user-1", []CheckoutItem{
		item(1, 3, "10.00"),
		item(2, 1, "20.00"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, checkout.ID)
	assert.Equal(t, CheckoutStatePending, checkout.State)
	assert.Equal(t, "user-1", checkout.CreatedBy)
	require.Len(t, checkout.Items, 2)
	assert.Equal(t, int64(1), checkout.Items[0].ProductID)
	assert.Equal(t, int64(2), checkout.Items[1].ProductID)
	for _, it := range checkout.Items {
		assert.Equal(t, checkout.ID, it.CheckoutID)
	}
	assert.True(t, decimal.RequireFromString("50.00").Equal(TotalAmount(checkout.Items)))
}

func TestNewCheckout_NoItems(t *testing.T) {
	checkout, err := NewCheckout("buyer@example.com", "", "", "user-1", nil)
	require.NoError(t, err)

	assert.Empty(t, checkout.Items)
	assert.True(t, TotalAmount(checkout.Items).IsZero())
}

func TestNewCheckout_InvalidQuantity(t *testing.T) {
	_, err := NewCheckout("buyer@example.com", "", "", "user-1", []CheckoutItem{item(1, 0, "10.00")})

	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCheckout_TransitionTo(t *testing.T) {
	tests := []struct {
		name          string
		from          CheckoutState
		to            CheckoutState
		expectedError bool
	}{
		{"pending to completed", CheckoutStatePending, CheckoutStateCompleted, false},
		{"pending to cancelled", CheckoutStatePending, CheckoutStateCancelled, false},
		{"completed to completed is a no-op", CheckoutStateCompleted, CheckoutStateCompleted, false},
		{"completed to pending", CheckoutStateCompleted, CheckoutStatePending, true},
		{"cancelled to completed", CheckoutStateCancelled, CheckoutStateCompleted, true},
		{"pending to unknown", CheckoutStatePending, CheckoutState("SHIPPED"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkout := &Checkout{ID: "c-1", State: tt.from}

			err := checkout.TransitionTo(tt.to)

			if tt.expectedError {
				assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
				assert.Equal(t, tt.from, checkout.State)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, checkout.State)
		})
	}
}

func TestCheckout_SetPaymentMethod(t *testing.T) {
	checkout := &Checkout{ID: "c-1", State: CheckoutStatePending}

	checkout.SetPaymentMethod(models.PaymentMethodBanking)

	require.NotNil(t, checkout.PaymentMethodID)
	assert.Equal(t, models.PaymentMethodBanking, *checkout.PaymentMethodID)
}
