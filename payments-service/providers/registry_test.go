package providers

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/payments-service/mocks"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name          string
		handlers      func(t *testing.T) []PaymentHandler
		expectedIDs   []string
		expectedError string
	}{
		{
			name: "indexes every provider",
			handlers: func(t *testing.T) []PaymentHandler {
				return []PaymentHandler{NewCODHandler(), NewBankingHandler(mocks.NewMockBankGateway(t))}
			},
			expectedIDs: []string{"BANKING", "COD"},
		},
		{
			name: "duplicate provider id",
			handlers: func(t *testing.T) []PaymentHandler {
				return []PaymentHandler{NewCODHandler(), NewCODHandler()}
			},
			expectedError: "duplicate payment handler for provider: COD",
		},
		{
			name: "empty provider id",
			handlers: func(t *testing.T) []PaymentHandler {
				handler := mocks.NewMockPaymentHandler(t)
				handler.EXPECT().ProviderID().Return("").Once()
				return []PaymentHandler{handler}
			},
			expectedError: "empty provider id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry(tt.handlers(t)...)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, registry)
				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expectedIDs, registry.ProviderIDs())
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	cod := NewCODHandler()
	registry, err := NewRegistry(cod)
	require.NoError(t, err)

	handler, err := registry.Get("COD")
	require.NoError(t, err)
	assert.Same(t, cod, handler)

	handler, err = registry.Get("PAYPAL")
	require.Error(t, err)
	assert.Nil(t, handler)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	assert.Equal(t, "No payment handler found for provider: PAYPAL", err.Error())

	// Lookup is exact; there is no fallback provider.
	_, err = registry.Get("cod")
	assert.Error(t, err)
}

func TestCODHandler(t *testing.T) {
	handler := NewCODHandler()
	ctx := context.Background()

	initiated, err := handler.InitPayment(ctx, &domain.InitPaymentRequest{
		PaymentMethod: "COD",
		TotalPrice:    decimal.NewFromInt(40),
		CheckoutID:    "chk-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "NEW", initiated.Status.String())
	assert.Empty(t, initiated.RedirectURL)

	captured, err := handler.CapturePayment(ctx, &domain.CapturePaymentRequest{
		PaymentMethod: "COD",
		CheckoutID:    "chk-1",
		Amount:        decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", captured.PaymentStatus.String())
	assert.Equal(t, "COD", captured.PaymentMethod.String())
	assert.True(t, captured.PaymentFee.IsZero())
	assert.True(t, captured.Amount.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "chk-1", captured.CheckoutID)
	assert.Empty(t, captured.FailureMessage)
}
