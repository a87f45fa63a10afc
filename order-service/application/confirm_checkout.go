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
	"github.com/shopyard/fulfillment/shared/telemetry"
)

// ConfirmCheckoutCommand represents the customer confirming a checkout
type ConfirmCheckoutCommand struct {
	CheckoutID string
	CallerID   string
}

// ConfirmCheckoutResponse represents the order placed for a confirmed checkout
type ConfirmCheckoutResponse struct {
	CheckoutID string     `json:"checkout_id"`
	Order      *OrderView `json:"order"`
}

// ConfirmCheckout starts the fulfillment saga: it completes the checkout,
// places its order and announces both to the payment and stock participants.
type ConfirmCheckout struct {
	checkoutRepository domain.CheckoutRepository
	orderRepository    domain.OrderRepository
	eventPublisher     events.Publisher
}

// NewConfirmCheckout creates a new ConfirmCheckout use case
func NewConfirmCheckout(
	checkoutRepository domain.CheckoutRepository,
	orderRepository domain.OrderRepository,
	eventPublisher events.Publisher,
) *ConfirmCheckout {
	return &ConfirmCheckout{
		checkoutRepository: checkoutRepository,
		orderRepository:    orderRepository,
		eventPublisher:     eventPublisher,
	}
}

// Execute confirms the checkout. Confirming an already completed checkout
// republishes the same events, so a client retry after a failed publish
// finishes the job.
func (uc *ConfirmCheckout) Execute(ctx context.Context, cmd *ConfirmCheckoutCommand) (*ConfirmCheckoutResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "confirm_checkout",
		trace.WithAttributes(attribute.String("checkout_id", cmd.CheckoutID)),
	)
	defer span.End()

	status := "error"
	defer func() {
		telemetry.RecordCounter(ctx, "checkout_operations_total", "Total checkout operations", 1,
			attribute.String("operation", "confirm_checkout"),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "checkout_operation_duration_seconds", "Checkout operation duration", time.Since(start).Seconds(),
			attribute.String("operation", "confirm_checkout"),
			attribute.String("status", status),
		)
	}()

	checkout, err := uc.checkoutRepository.FindByID(ctx, cmd.CheckoutID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find checkout")
	}

	if checkout == nil {
		return nil, apperrors.NotFound("Checkout %s not found", cmd.CheckoutID)
	}

	if !checkout.IsOwnedBy(cmd.CallerID) {
		return nil, apperrors.Forbidden("You don't have permission to access this page")
	}

	if checkout.PaymentMethodID == nil {
		return nil, apperrors.InvalidArgument("checkout %s has no payment method", checkout.ID)
	}

	if err := checkout.TransitionTo(domain.CheckoutStateCompleted); err != nil {
		return nil, errors.Wrap(err, "failed to complete checkout")
	}

	items, err := uc.checkoutRepository.FindItemsByCheckoutID(ctx, checkout.ID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find checkout items")
	}

	if len(items) == 0 {
		return nil, apperrors.InvalidArgument("checkout %s has no items", checkout.ID)
	}

	order, created, err := uc.orderRepository.PlaceOrder(ctx, checkout, domain.NewOrder(checkout, items))
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to place order")
	}

	span.SetAttributes(
		attribute.Int64("order_id", order.ID),
		attribute.Bool("order_created", created),
	)

	if err := uc.eventPublisher.Publish(ctx,
		newCheckoutCompletedEvent(checkout, order),
		newStockCommandEvent(order, items),
	); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to publish events")
	}

	status = "success"

	return &ConfirmCheckoutResponse{
		CheckoutID: checkout.ID,
		Order:      newOrderView(order),
	}, nil
}
