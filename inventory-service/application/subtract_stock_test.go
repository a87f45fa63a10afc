package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/inventory-service/domain"
	"github.com/shopyard/fulfillment/inventory-service/mocks"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/models"
	"github.com/shopyard/fulfillment/shared/saga"
)

// outcome makes the repository mock answer with the reply built for err.
func outcome(err error) func(context.Context, string, string, []domain.StockLine, domain.ReplyBuilder) (*saga.StockReply, error) {
	return func(_ context.Context, _, _ string, _ []domain.StockLine, reply domain.ReplyBuilder) (*saga.StockReply, error) {
		return reply(err), nil
	}
}

func stockCommand(items ...saga.ProductItem) *SubtractStockCommand {
	return &SubtractStockCommand{
		CommandID:     "cmd-1",
		CorrelationID: "42",
		ReplyTo:       events.StockSubtractionReplyTopic,
		Command: saga.StockCommand{
			OrderID:      42,
			CheckoutID:   "chk-1",
			ProductItems: items,
		},
	}
}

func replyMatcher(success bool, reason string) interface{} {
	return mock.MatchedBy(func(evt *events.Event) bool {
		reply, ok := evt.Data.(*saga.StockReply)
		return ok &&
			evt.Topic == events.StockSubtractionReplyTopic &&
			evt.CorrelationID == "42" &&
			evt.ID == models.NameBasedID("stock-reply:cmd-1") &&
			reply.Success == success && reply.Reason == reason
	})
}

func TestSubtractStock_Execute(t *testing.T) {
	tests := []struct {
		name            string
		command         *SubtractStockCommand
		setupMocks      func(*mocks.MockStockRepository, *mocks.MockPublisher)
		expectedSuccess bool
		expectedReason  string
		expectedMessage string
		expectedError   string
	}{
		{
			name:    "all lines satisfied",
			command: stockCommand(saga.ProductItem{ProductID: 1, Quantity: 2}, saga.ProductItem{ProductID: 2, Quantity: 1}),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				stock.EXPECT().SubtractStock(mock.Anything, "cmd-1", "42",
					[]domain.StockLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}, mock.Anything).
					RunAndReturn(outcome(nil)).Once()
				publisher.EXPECT().Publish(mock.Anything, replyMatcher(true, "")).Return(nil).Once()
			},
			expectedSuccess: true,
			expectedMessage: "Subtract product stock quantity success",
		},
		{
			name:    "duplicate products are merged",
			command: stockCommand(saga.ProductItem{ProductID: 1, Quantity: 2}, saga.ProductItem{ProductID: 1, Quantity: 3}),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				stock.EXPECT().SubtractStock(mock.Anything, "cmd-1", "42",
					[]domain.StockLine{{ProductID: 1, Quantity: 5}}, mock.Anything).
					RunAndReturn(outcome(nil)).Once()
				publisher.EXPECT().Publish(mock.Anything, replyMatcher(true, "")).Return(nil).Once()
			},
			expectedSuccess: true,
			expectedMessage: "Subtract product stock quantity success",
		},
		{
			name:    "insufficient stock is a failure reply",
			command: stockCommand(saga.ProductItem{ProductID: 1, Quantity: 9}),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				stock.EXPECT().SubtractStock(mock.Anything, "cmd-1", "42", mock.Anything, mock.Anything).
					RunAndReturn(outcome(&domain.InsufficientStockError{ProductID: 1, Requested: 9, Available: 4})).Once()
				publisher.EXPECT().Publish(mock.Anything, replyMatcher(false, saga.ReasonInsufficientStock)).Return(nil).Once()
			},
			expectedReason:  saga.ReasonInsufficientStock,
			expectedMessage: "insufficient stock for product 1: requested 9, available 4",
		},
		{
			name:    "unknown product is a failure reply",
			command: stockCommand(saga.ProductItem{ProductID: 7, Quantity: 1}),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				stock.EXPECT().SubtractStock(mock.Anything, "cmd-1", "42", mock.Anything, mock.Anything).
					RunAndReturn(outcome(&domain.ProductNotFoundError{ProductID: 7})).Once()
				publisher.EXPECT().Publish(mock.Anything, replyMatcher(false, saga.ReasonProductNotFound)).Return(nil).Once()
			},
			expectedReason:  saga.ReasonProductNotFound,
			expectedMessage: "product 7 not found",
		},
		{
			name:    "empty command is rejected without touching stock",
			command: stockCommand(),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				publisher.EXPECT().Publish(mock.Anything, replyMatcher(false, saga.ReasonInvalidCommand)).Return(nil).Once()
			},
			expectedReason:  saga.ReasonInvalidCommand,
			expectedMessage: "stock command has no product items",
		},
		{
			name:    "non positive quantity is rejected",
			command: stockCommand(saga.ProductItem{ProductID: 1, Quantity: 0}),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				publisher.EXPECT().Publish(mock.Anything, replyMatcher(false, saga.ReasonInvalidCommand)).Return(nil).Once()
			},
			expectedReason:  saga.ReasonInvalidCommand,
			expectedMessage: "invalid quantity 0 for product 1",
		},
		{
			name:    "database failure is an error and nothing is published",
			command: stockCommand(saga.ProductItem{ProductID: 1, Quantity: 1}),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				stock.EXPECT().SubtractStock(mock.Anything, "cmd-1", "42", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedError: "failed to subtract stock: connection refused",
		},
		{
			name:    "publish failure is an error",
			command: stockCommand(saga.ProductItem{ProductID: 1, Quantity: 1}),
			setupMocks: func(stock *mocks.MockStockRepository, publisher *mocks.MockPublisher) {
				stock.EXPECT().SubtractStock(mock.Anything, "cmd-1", "42", mock.Anything, mock.Anything).
					RunAndReturn(outcome(nil)).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("sns throttled")).Once()
			},
			expectedError: "failed to publish stock reply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stock := mocks.NewMockStockRepository(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(stock, publisher)

			reply, err := NewSubtractStock(stock, publisher).Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, reply)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, reply.Success)
			assert.Equal(t, tt.expectedReason, reply.Reason)
			assert.Equal(t, tt.expectedMessage, reply.Message)
		})
	}
}

func TestSubtractStock_DefaultReplyTopic(t *testing.T) {
	stock := mocks.NewMockStockRepository(t)
	publisher := mocks.NewMockPublisher(t)
	stock.EXPECT().SubtractStock(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(outcome(nil)).Once()
	publisher.EXPECT().Publish(mock.Anything, replyMatcher(true, "")).Return(nil).Once()

	cmd := stockCommand(saga.ProductItem{ProductID: 1, Quantity: 1})
	cmd.ReplyTo = ""

	_, err := NewSubtractStock(stock, publisher).Execute(context.Background(), cmd)
	require.NoError(t, err)
}
