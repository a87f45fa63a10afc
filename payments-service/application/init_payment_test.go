package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/payments-service/mocks"
	"github.com/shopyard/fulfillment/payments-service/providers"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

func TestInitPayment_Execute(t *testing.T) {
	tests := []struct {
		name          string
		req           *domain.InitPaymentRequest
		setupMocks    func(*mocks.MockBankGateway)
		expected      *InitPaymentResponse
		expectedError string
	}{
		{
			name:       "cash on delivery",
			req:        &domain.InitPaymentRequest{PaymentMethod: "COD", TotalPrice: decimal.NewFromInt(50), CheckoutID: "chk-1"},
			setupMocks: func(*mocks.MockBankGateway) {},
			expected:   &InitPaymentResponse{Status: "NEW", PaymentID: "cod-chk-1"},
		},
		{
			name: "banking redirects to the bank",
			req:  &domain.InitPaymentRequest{PaymentMethod: "BANKING", TotalPrice: decimal.NewFromInt(50), CheckoutID: "chk-1"},
			setupMocks: func(gateway *mocks.MockBankGateway) {
				gateway.EXPECT().CreateTransaction(mock.Anything, "chk-1", mock.Anything).
					Return(&domain.BankTransaction{Reference: "ref-1", ApprovalURL: "https://bank.test/approve/ref-1"}, nil).Once()
			},
			expected: &InitPaymentResponse{Status: "PROCESSING", PaymentID: "ref-1", RedirectURL: "https://bank.test/approve/ref-1"},
		},
		{
			name: "provider failure propagates",
			req:  &domain.InitPaymentRequest{PaymentMethod: "BANKING", TotalPrice: decimal.NewFromInt(50), CheckoutID: "chk-1"},
			setupMocks: func(gateway *mocks.MockBankGateway) {
				gateway.EXPECT().CreateTransaction(mock.Anything, "chk-1", mock.Anything).
					Return(nil, errors.New("bank offline")).Once()
			},
			expectedError: "bank offline",
		},
		{
			name:          "unknown provider",
			req:           &domain.InitPaymentRequest{PaymentMethod: "PAYPAL", TotalPrice: decimal.NewFromInt(50), CheckoutID: "chk-1"},
			setupMocks:    func(*mocks.MockBankGateway) {},
			expectedError: "No payment handler found for provider: PAYPAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mocks.NewMockBankGateway(t)
			tt.setupMocks(gateway)

			registry, err := providers.NewRegistry(providers.NewCODHandler(), providers.NewBankingHandler(gateway))
			require.NoError(t, err)

			result, err := NewInitPayment(registry).Execute(context.Background(), tt.req)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestInitPayment_UnknownProviderIsInvalidArgument(t *testing.T) {
	registry, err := providers.NewRegistry(providers.NewCODHandler())
	require.NoError(t, err)

	_, err = NewInitPayment(registry).Execute(context.Background(), &domain.InitPaymentRequest{PaymentMethod: "BANKING"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}
