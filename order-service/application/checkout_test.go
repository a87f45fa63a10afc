package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/order-service/mocks"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

func TestCreateCheckout_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *CreateCheckoutCommand
		setupMocks    func(*mocks.MockCheckoutRepository)
		expectedError string
		expectedItems int
	}{
		{
			name: "checkout with two items",
			command: &CreateCheckoutCommand{
				Email:     "buyer@example.com",
				CreatedBy: testOwnerID,
				Items: []CreateCheckoutItemCommand{
					{ProductID: 10, Quantity: 2, ProductPrice: decimal.NewFromInt(15)},
					{ProductID: 11, Quantity: 1, ProductPrice: decimal.NewFromInt(20)},
				},
			},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Checkout) bool {
					return c.State == domain.CheckoutStatePending && len(c.Items) == 2 && c.CreatedBy == testOwnerID
				})).Run(func(_ context.Context, c *domain.Checkout) {
					for i := range c.Items {
						c.Items[i].ID = int64(i + 1)
					}
				}).Return(nil).Once()
			},
			expectedItems: 2,
		},
		{
			name:    "checkout without items",
			command: &CreateCheckoutCommand{Email: "buyer@example.com", CreatedBy: testOwnerID},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Checkout")).Return(nil).Once()
			},
			expectedItems: 0,
		},
		{
			name: "non-positive quantity",
			command: &CreateCheckoutCommand{
				Email: "buyer@example.com",
				Items: []CreateCheckoutItemCommand{{ProductID: 10, Quantity: 0}},
			},
			setupMocks:    func(repo *mocks.MockCheckoutRepository) {},
			expectedError: "quantity must be positive",
		},
		{
			name:    "repository failure",
			command: &CreateCheckoutCommand{Email: "buyer@example.com"},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
			},
			expectedError: "failed to create checkout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCheckoutRepository(t)
			tt.setupMocks(repo)

			uc := NewCreateCheckout(repo)
			view, err := uc.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, view.ID)
			assert.Equal(t, "PENDING", view.State)
			assert.Len(t, view.Items, tt.expectedItems)
			for i, item := range view.Items {
				assert.Equal(t, view.ID, item.CheckoutID)
				assert.Equal(t, int64(i+1), item.ID)
				assert.Equal(t, tt.command.Items[i].ProductID, item.ProductID)
			}
		})
	}
}

func TestGetPendingCheckout_Execute(t *testing.T) {
	tests := []struct {
		name          string
		query         *GetPendingCheckoutQuery
		setupMocks    func(*mocks.MockCheckoutRepository)
		expectedKind  apperrors.Kind
		expectedError string
		expectNoItems bool
	}{
		{
			name:  "owner reads checkout with items",
			query: &GetPendingCheckoutQuery{CheckoutID: testCheckoutID, CallerID: testOwnerID},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByIDAndState(mock.Anything, testCheckoutID, domain.CheckoutStatePending).Return(pendingCheckout(nil), nil).Once()
				repo.EXPECT().FindItemsByCheckoutID(mock.Anything, testCheckoutID).Return(checkoutItems(), nil).Once()
			},
		},
		{
			name:  "owner reads checkout without items",
			query: &GetPendingCheckoutQuery{CheckoutID: testCheckoutID, CallerID: testOwnerID},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByIDAndState(mock.Anything, testCheckoutID, domain.CheckoutStatePending).Return(pendingCheckout(nil), nil).Once()
				repo.EXPECT().FindItemsByCheckoutID(mock.Anything, testCheckoutID).Return([]domain.CheckoutItem{}, nil).Once()
			},
			expectNoItems: true,
		},
		{
			name:  "checkout not pending or missing",
			query: &GetPendingCheckoutQuery{CheckoutID: testCheckoutID, CallerID: testOwnerID},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByIDAndState(mock.Anything, testCheckoutID, domain.CheckoutStatePending).Return(nil, nil).Once()
			},
			expectedKind:  apperrors.KindNotFound,
			expectedError: "not found",
		},
		{
			name:  "other customer",
			query: &GetPendingCheckoutQuery{CheckoutID: testCheckoutID, CallerID: "intruder"},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByIDAndState(mock.Anything, testCheckoutID, domain.CheckoutStatePending).Return(pendingCheckout(nil), nil).Once()
			},
			expectedKind:  apperrors.KindForbidden,
			expectedError: "You don't have permission to access this page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCheckoutRepository(t)
			tt.setupMocks(repo)

			view, err := NewGetPendingCheckout(repo).Execute(context.Background(), tt.query)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsKind(err, tt.expectedKind))
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCheckoutID, view.ID)
			if tt.expectNoItems {
				assert.Nil(t, view.Items)
			} else {
				assert.Len(t, view.Items, 2)
			}
		})
	}
}

func TestUpdateCheckoutPaymentMethod_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *UpdateCheckoutPaymentMethodCommand
		setupMocks    func(*mocks.MockCheckoutRepository)
		expectedError string
	}{
		{
			name:    "sets banking",
			command: &UpdateCheckoutPaymentMethodCommand{CheckoutID: testCheckoutID, PaymentMethodID: models.StringPtr("BANKING")},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByID(mock.Anything, testCheckoutID).Return(pendingCheckout(nil), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *domain.Checkout) bool {
					return c.PaymentMethodID != nil && *c.PaymentMethodID == models.PaymentMethodBanking
				})).Return(nil).Once()
			},
		},
		{
			name:    "absent method is a no-op",
			command: &UpdateCheckoutPaymentMethodCommand{CheckoutID: testCheckoutID},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByID(mock.Anything, testCheckoutID).Return(pendingCheckout(nil), nil).Once()
			},
		},
		{
			name:    "unknown method",
			command: &UpdateCheckoutPaymentMethodCommand{CheckoutID: testCheckoutID, PaymentMethodID: models.StringPtr("BITCOIN")},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByID(mock.Anything, testCheckoutID).Return(pendingCheckout(nil), nil).Once()
			},
			expectedError: "unknown payment method",
		},
		{
			name:    "checkout not found",
			command: &UpdateCheckoutPaymentMethodCommand{CheckoutID: testCheckoutID, PaymentMethodID: models.StringPtr("COD")},
			setupMocks: func(repo *mocks.MockCheckoutRepository) {
				repo.EXPECT().FindByID(mock.Anything, testCheckoutID).Return(nil, nil).Once()
			},
			expectedError: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCheckoutRepository(t)
			tt.setupMocks(repo)

			err := NewUpdateCheckoutPaymentMethod(repo).Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
