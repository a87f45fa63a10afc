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
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

func TestCreatePaymentFromEvent_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *CreatePaymentFromEventCommand
		setupMocks    func(*mocks.MockPaymentRepository)
		expectedID    int64
		expectedKind  apperrors.Kind
		expectedError string
	}{
		{
			name:    "cash on delivery starts new",
			command: &CreatePaymentFromEventCommand{EventID: "evt-1", CheckoutID: "chk-1", PaymentMethod: "COD", TotalAmount: decimal.NewFromInt(30)},
			setupMocks: func(payments *mocks.MockPaymentRepository) {
				payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == models.PaymentStatusNew && p.OrderID == nil &&
						*p.SourceEventID == "evt-1" && p.Amount.Equal(decimal.NewFromInt(30))
				})).Run(func(_ context.Context, p *domain.Payment) {
					p.ID = 11
				}).Return(nil).Once()
			},
			expectedID: 11,
		},
		{
			name:    "electronic payment starts processing",
			command: &CreatePaymentFromEventCommand{EventID: "evt-2", CheckoutID: "chk-2", PaymentMethod: "BANKING", TotalAmount: decimal.NewFromInt(30)},
			setupMocks: func(payments *mocks.MockPaymentRepository) {
				payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == models.PaymentStatusProcessing && p.PaymentMethod == models.PaymentMethodBanking
				})).Run(func(_ context.Context, p *domain.Payment) {
					p.ID = 12
				}).Return(nil).Once()
			},
			expectedID: 12,
		},
		{
			name:          "unknown payment method",
			command:       &CreatePaymentFromEventCommand{EventID: "evt-3", CheckoutID: "chk-3", PaymentMethod: "CRYPTO"},
			setupMocks:    func(*mocks.MockPaymentRepository) {},
			expectedKind:  apperrors.KindInvalidArgument,
			expectedError: "unknown payment method: CRYPTO",
		},
		{
			name:          "missing checkout",
			command:       &CreatePaymentFromEventCommand{EventID: "evt-4", PaymentMethod: "COD"},
			setupMocks:    func(*mocks.MockPaymentRepository) {},
			expectedKind:  apperrors.KindInvalidArgument,
			expectedError: "checkout ID is required",
		},
		{
			name:    "repository failure",
			command: &CreatePaymentFromEventCommand{EventID: "evt-5", CheckoutID: "chk-5", PaymentMethod: "COD"},
			setupMocks: func(payments *mocks.MockPaymentRepository) {
				payments.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("database is down")).Once()
			},
			expectedError: "failed to save payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := mocks.NewMockPaymentRepository(t)
			tt.setupMocks(payments)

			id, err := NewCreatePaymentFromEvent(payments).Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				if tt.expectedKind != "" {
					assert.True(t, apperrors.IsKind(err, tt.expectedKind))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
