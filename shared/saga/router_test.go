package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/shared/events"
)

func TestRouter_Handle(t *testing.T) {
	var calls []string

	router := NewRouter("test-router", zap.NewNop()).
		Register(events.StockSubtractionTopic, HandlerFunc(func(ctx context.Context, event *events.Event) error {
			calls = append(calls, "first")
			return nil
		})).
		Register(events.StockSubtractionTopic, HandlerFunc(func(ctx context.Context, event *events.Event) error {
			calls = append(calls, "second")
			return nil
		}))

	err := router.Handle(context.Background(), events.NewEvent("1", events.StockSubtractionTopic, StockCommand{}))

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "test-router", router.HandlerID())
}

func TestRouter_Handle_UnknownTopicIsIgnored(t *testing.T) {
	router := NewRouter("test-router", zap.NewNop())

	err := router.Handle(context.Background(), events.NewEvent("1", events.CheckoutCompletedTopic, nil))

	assert.NoError(t, err)
}

func TestRouter_Handle_PropagatesHandlerError(t *testing.T) {
	boom := errors.New("database unavailable")
	secondCalled := false

	router := NewRouter("test-router", zap.NewNop()).
		Register(events.StockSubtractionReplyTopic, HandlerFunc(func(ctx context.Context, event *events.Event) error {
			return boom
		})).
		Register(events.StockSubtractionReplyTopic, HandlerFunc(func(ctx context.Context, event *events.Event) error {
			secondCalled = true
			return nil
		}))

	err := router.Handle(context.Background(), events.NewEvent("1", events.StockSubtractionReplyTopic, StockReply{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, secondCalled)
	assert.ElementsMatch(t, []events.Topic{events.StockSubtractionReplyTopic}, router.Topics())
}
