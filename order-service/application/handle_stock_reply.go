package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/saga"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

// HandleStockReplyCommand is a stock participant reply for an order
type HandleStockReplyCommand struct {
	OrderID int64
	Reply   saga.StockReply
}

// HandleStockReply reconciles an order with the outcome of its stock step.
type HandleStockReply struct {
	orderRepository domain.OrderRepository
	eventPublisher  events.Publisher
}

// NewHandleStockReply creates a new HandleStockReply use case
func NewHandleStockReply(orderRepository domain.OrderRepository, eventPublisher events.Publisher) *HandleStockReply {
	return &HandleStockReply{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
	}
}

// Execute applies the reply. A failure on a paid order requests a refund; a
// redelivered failure republishes the same refund request.
func (uc *HandleStockReply) Execute(ctx context.Context, cmd *HandleStockReplyCommand) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "handle_stock_reply",
		trace.WithAttributes(
			attribute.Int64("order_id", cmd.OrderID),
			attribute.Bool("success", cmd.Reply.Success),
		),
	)
	defer span.End()

	outcome := "ignored"
	defer func() {
		telemetry.RecordCounter(ctx, "stock_replies_total", "Stock saga replies handled", 1,
			attribute.Bool("success", cmd.Reply.Success),
			attribute.String("outcome", outcome),
		)
		telemetry.RecordHistogram(ctx, "stock_reply_duration_seconds", "Stock reply handling duration", time.Since(start).Seconds())
	}()

	order, err := uc.orderRepository.FindByID(ctx, cmd.OrderID)
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		return errors.Wrap(err, "failed to find order")
	}

	if order == nil {
		outcome = "error"
		return apperrors.NotFound("Order %d not found", cmd.OrderID)
	}

	changed, refundRequired := order.ApplyStockResult(cmd.Reply.Success)
	if changed {
		if err := uc.orderRepository.Save(ctx, order); err != nil {
			outcome = "error"
			span.RecordError(err)
			return errors.Wrap(err, "failed to save order")
		}
		outcome = order.Status.String()
	}

	if refundRequired {
		reason := cmd.Reply.Message
		if cmd.Reply.Reason != "" {
			reason = cmd.Reply.Reason + ": " + cmd.Reply.Message
		}

		if err := uc.eventPublisher.Publish(ctx, newRefundRequestedEvent(order, reason)); err != nil {
			outcome = "error"
			span.RecordError(err)
			return errors.Wrap(err, "failed to request refund")
		}
	}

	return nil
}
