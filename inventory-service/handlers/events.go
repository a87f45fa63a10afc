package handlers

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/inventory-service/application"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/saga"
)

// StockCommandHandler consumes stock-subtraction commands
type StockCommandHandler struct {
	subtractStock *application.SubtractStock
	logger        *zap.Logger
}

// NewStockCommandHandler creates a new StockCommandHandler
func NewStockCommandHandler(subtractStock *application.SubtractStock, logger *zap.Logger) *StockCommandHandler {
	return &StockCommandHandler{
		subtractStock: subtractStock,
		logger:        logger,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *StockCommandHandler) HandlerID() string {
	return "inventory-service-stock-command-handler"
}

// Handle answers every command it can correlate. An unreadable command still
// gets a failure reply so the saga is not left waiting.
func (h *StockCommandHandler) Handle(ctx context.Context, event *events.Event) error {
	logger := h.logger.With(
		zap.String("event_id", event.ID.String()),
		zap.String("correlation_id", event.CorrelationID.String()),
	)

	if event.CorrelationID == "" {
		logger.Warn("dropping stock command without correlation id")
		return nil
	}

	cmd := &application.SubtractStockCommand{
		CommandID:     event.ID.String(),
		CorrelationID: event.CorrelationID.String(),
		ReplyTo:       event.ReplyTo(events.StockSubtractionReplyTopic),
	}

	if err := event.UnmarshalPayload(&cmd.Command); err != nil {
		logger.Warn("malformed stock command", zap.Error(err))
		cmd.Command = saga.StockCommand{}
	}

	reply, err := h.subtractStock.Execute(ctx, cmd)
	if err != nil {
		return errors.Wrapf(err, "failed to process stock command %s", event.ID)
	}

	logger.Info("stock command processed",
		zap.Int64("order_id", cmd.Command.OrderID),
		zap.Bool("success", reply.Success),
		zap.String("reason", reply.Reason),
	)

	return nil
}
