package infrastructure

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/saga"
)

// fakeSQS serves the queued messages once, then answers empty receives.
type fakeSQS struct {
	mux        sync.Mutex
	messages   []types.Message
	deleted    chan string
	visibility chan int32
}

func newFakeSQS(messages ...types.Message) *fakeSQS {
	return &fakeSQS{
		messages:   messages,
		deleted:    make(chan string, 10),
		visibility: make(chan int32, 10),
	}
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mux.Lock()
	defer f.mux.Unlock()

	out := &sqs.ReceiveMessageOutput{Messages: f.messages}
	f.messages = nil
	return out, nil
}

func (f *fakeSQS) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted <- aws.ToString(params.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) ChangeMessageVisibility(ctx context.Context, params *sqs.ChangeMessageVisibilityInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error) {
	f.visibility <- params.VisibilityTimeout
	return &sqs.ChangeMessageVisibilityOutput{}, nil
}

func message(id, body string, receiveCount string) types.Message {
	return types.Message{
		MessageId:     aws.String(id),
		ReceiptHandle: aws.String("rh-" + id),
		Body:          aws.String(body),
		Attributes:    map[string]string{"ApproximateReceiveCount": receiveCount},
	}
}

func startSubscriber(t *testing.T, client SQSAPI, handler events.EventHandler) *SQSEventSubscriber {
	t.Helper()

	subscriber := NewSQSEventSubscriber(client, "http://localhost:4566/000000000000/inventory", nil, zap.NewNop(),
		WithWorkers(2),
		WithSleepTimeAfterEmptyReceive(5*time.Millisecond),
	)
	require.NoError(t, subscriber.Subscribe(context.Background(), handler))
	t.Cleanup(func() { _ = subscriber.Close() })

	return subscriber
}

func TestSQSEventSubscriber_AcknowledgesHandledMessages(t *testing.T) {
	client := newFakeSQS(message("m-1", `{"id":"e-1","topic":"stock-subtraction","data":{"product_items":[{"product_id":1,"quantity":2}]}}`, "1"))

	received := make(chan *events.Event, 1)
	startSubscriber(t, client, saga.HandlerFunc(func(ctx context.Context, event *events.Event) error {
		received <- event
		return nil
	}))

	select {
	case event := <-received:
		assert.Equal(t, events.StockSubtractionTopic, event.Topic)
		assert.Equal(t, "m-1", event.Metadata[SQSMessageIDKey])
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	select {
	case handle := <-client.deleted:
		assert.Equal(t, "rh-m-1", handle)
	case <-time.After(time.Second):
		t.Fatal("message was not deleted")
	}
}

func TestSQSEventSubscriber_BacksOffFailedMessages(t *testing.T) {
	client := newFakeSQS(message("m-2", `{"id":"e-2","topic":"stock-subtraction"}`, "6"))

	startSubscriber(t, client, saga.HandlerFunc(func(ctx context.Context, event *events.Event) error {
		return errors.New("database unavailable")
	}))

	select {
	case timeout := <-client.visibility:
		// 30s base + (6/3) * 30s offset
		assert.Equal(t, int32(90), timeout)
	case <-time.After(time.Second):
		t.Fatal("visibility was not extended")
	}

	assert.Empty(t, client.deleted)
}

func TestSQSEventSubscriber_SubscribeTwice(t *testing.T) {
	subscriber := startSubscriber(t, newFakeSQS(), saga.HandlerFunc(func(ctx context.Context, event *events.Event) error {
		return nil
	}))

	err := subscriber.Subscribe(context.Background(), saga.HandlerFunc(func(ctx context.Context, event *events.Event) error {
		return nil
	}))

	assert.Error(t, err)
}
