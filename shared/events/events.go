package events

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"github.com/shopyard/fulfillment/shared/models"
)

var ErrInvalidReceiver = errors.New("receiver should be a pointer")

// MetadataReplyTo names the topic a command's reply must be published on.
const MetadataReplyTo = "reply_to"

// Topic names a channel on the shared SNS topic. Queues subscribe to the
// topics their service consumes through a filter on the topic attribute.
type Topic string

func (t Topic) String() string {
	return string(t)
}

// Topics
const (
	// Checkout
	CheckoutCompletedTopic Topic = "checkout.completed"

	// Order
	OrderRefundRequestedTopic Topic = "order.refund.requested"

	// Stock saga channel
	StockSubtractionTopic      Topic = "stock-subtraction"
	StockSubtractionReplyTopic Topic = "stock-subtraction.reply"
)

// Metadata travels with the event as string attributes.
type Metadata map[string]string

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Set(key string, value string) {
	m[key] = value
}

// Event is the envelope every message travels in. ID doubles as the
// idempotency key for consumers and CorrelationID ties saga messages to the
// order they belong to.
type Event struct {
	ID            models.ID   `json:"id"`
	AggregateID   models.ID   `json:"aggregate_id"`
	Topic         Topic       `json:"topic"`
	Version       string      `json:"version"`
	Data          interface{} `json:"data"`
	Metadata      Metadata    `json:"metadata"`
	Timestamp     time.Time   `json:"timestamp"`
	CorrelationID models.ID   `json:"correlation_id"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// Subscriber subscribes to events
type Subscriber interface {
	Subscribe(ctx context.Context, handler EventHandler) error
}

// EventHandler handles domain events
type EventHandler interface {
	Handle(ctx context.Context, event *Event) error
}

// NewEvent creates an event with a random id. Use WithID when the same
// logical message may be published more than once.
func NewEvent(aggregateID models.ID, topic Topic, data interface{}) *Event {
	return &Event{
		ID:          models.GenerateUUID(),
		AggregateID: aggregateID,
		Topic:       topic,
		Version:     "1.0",
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now().UTC(),
	}
}

// WithID replaces the generated id.
func (e *Event) WithID(id models.ID) *Event {
	e.ID = id
	return e
}

// WithCorrelationID sets correlation ID
func (e *Event) WithCorrelationID(correlationID models.ID) *Event {
	e.CorrelationID = correlationID
	return e
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata.Set(key, value)
	return e
}

// WithReplyTo marks the event as a command answered on topic.
func (e *Event) WithReplyTo(topic Topic) *Event {
	return e.WithMetadata(MetadataReplyTo, topic.String())
}

// ReplyTo returns the reply topic of a command, or fallback when the sender
// did not name one.
func (e *Event) ReplyTo(fallback Topic) Topic {
	if topic, ok := e.Metadata.Get(MetadataReplyTo); ok && topic != "" {
		return Topic(topic)
	}
	return fallback
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	switch data := e.Data.(type) {
	case json.RawMessage:
		return data, nil
	case []byte:
		return data, nil
	default:
		return json.Marshal(e.Data)
	}
}

// UnmarshalPayload decodes the payload into v. Events built in-process carry
// the typed value and are assigned directly; events read off a queue carry
// raw JSON.
func (e *Event) UnmarshalPayload(v interface{}) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Ptr {
		return ErrInvalidReceiver
	}

	target = target.Elem()
	if payload := reflect.ValueOf(e.Data); payload.IsValid() && target.Type() == payload.Type() {
		target.Set(payload)
		return nil
	}

	raw, err := e.MarshalPayload()
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, v)
}
