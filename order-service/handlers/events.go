package handlers

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/order-service/application"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/saga"
)

// StockReplyHandler consumes stock-subtraction replies
type StockReplyHandler struct {
	handleStockReply *application.HandleStockReply
	logger           *zap.Logger
}

// NewStockReplyHandler creates a new StockReplyHandler
func NewStockReplyHandler(handleStockReply *application.HandleStockReply, logger *zap.Logger) *StockReplyHandler {
	return &StockReplyHandler{
		handleStockReply: handleStockReply,
		logger:           logger,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *StockReplyHandler) HandlerID() string {
	return "order-service-stock-reply-handler"
}

// Handle applies a reply. Malformed replies and replies for unknown orders
// are logged and dropped; anything else is returned for redelivery.
func (h *StockReplyHandler) Handle(ctx context.Context, event *events.Event) error {
	logger := h.logger.With(
		zap.String("event_id", event.ID.String()),
		zap.String("correlation_id", event.CorrelationID.String()),
	)

	orderID, err := application.ParseOrderCorrelationID(event.CorrelationID)
	if err != nil {
		logger.Warn("dropping stock reply without order correlation", zap.Error(err))
		return nil
	}

	var reply saga.StockReply
	if err := event.UnmarshalPayload(&reply); err != nil {
		logger.Warn("dropping malformed stock reply", zap.Error(err))
		return nil
	}

	err = h.handleStockReply.Execute(ctx, &application.HandleStockReplyCommand{
		OrderID: orderID,
		Reply:   reply,
	})
	if apperrors.IsKind(err, apperrors.KindNotFound) {
		logger.Warn("dropping stock reply for unknown order", zap.Int64("order_id", orderID))
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to handle stock reply for order %d", orderID)
	}

	logger.Info("stock reply applied",
		zap.Int64("order_id", orderID),
		zap.Bool("success", reply.Success),
		zap.String("reason", reply.Reason),
	)

	return nil
}
