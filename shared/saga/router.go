package saga

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/shared/events"
)

// HandlerFunc adapts a function to events.EventHandler.
type HandlerFunc func(ctx context.Context, event *events.Event) error

func (f HandlerFunc) Handle(ctx context.Context, event *events.Event) error {
	return f(ctx, event)
}

// Router dispatches events to the handlers registered for their topic.
// A handler error is returned to the subscriber so the message is redelivered.
type Router struct {
	id       string
	handlers map[events.Topic][]events.EventHandler
	logger   *zap.Logger
}

func NewRouter(id string, logger *zap.Logger) *Router {
	return &Router{
		id:       id,
		handlers: make(map[events.Topic][]events.EventHandler),
		logger:   logger,
	}
}

// Register adds a handler for topic.
func (r *Router) Register(topic events.Topic, handler events.EventHandler) *Router {
	r.handlers[topic] = append(r.handlers[topic], handler)
	return r
}

// Topics lists the topics with at least one handler.
func (r *Router) Topics() []events.Topic {
	topics := make([]events.Topic, 0, len(r.handlers))
	for topic := range r.handlers {
		topics = append(topics, topic)
	}
	return topics
}

func (r *Router) HandlerID() string {
	return r.id
}

func (r *Router) Handle(ctx context.Context, event *events.Event) error {
	handlers, exists := r.handlers[event.Topic]
	if !exists {
		r.logger.Debug("no handlers registered for topic", zap.String("topic", event.Topic.String()))
		return nil
	}

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			r.logger.Error("event handler failed",
				zap.String("topic", event.Topic.String()),
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
			return errors.Wrapf(err, "failed to handle %s event %s", event.Topic, event.ID)
		}
	}

	return nil
}
