package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/models"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

// UpdateCheckoutStatusCommand carries a captured payment reported by the
// payment service.
type UpdateCheckoutStatusCommand struct {
	CheckoutID           string          `json:"checkout_id"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentFee           decimal.Decimal `json:"payment_fee"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status"`
	GatewayTransactionID string          `json:"gateway_transaction_id,omitempty"`
	FailureMessage       string          `json:"failure_message,omitempty"`
}

// UpdateCheckoutStatusResponse represents the order the capture belongs to
type UpdateCheckoutStatusResponse struct {
	OrderID int64 `json:"order_id"`
}

// UpdateCheckoutStatus use case
type UpdateCheckoutStatus struct {
	checkoutRepository domain.CheckoutRepository
	orderRepository    domain.OrderRepository
	eventPublisher     events.Publisher
}

// NewUpdateCheckoutStatus creates a new UpdateCheckoutStatus use case
func NewUpdateCheckoutStatus(
	checkoutRepository domain.CheckoutRepository,
	orderRepository domain.OrderRepository,
	eventPublisher events.Publisher,
) *UpdateCheckoutStatus {
	return &UpdateCheckoutStatus{
		checkoutRepository: checkoutRepository,
		orderRepository:    orderRepository,
		eventPublisher:     eventPublisher,
	}
}

// Execute finds or places the order of the captured checkout and returns its
// id. A completed payment completes the checkout and dispatches the stock
// command; a failed one leaves the checkout open for another attempt.
func (uc *UpdateCheckoutStatus) Execute(ctx context.Context, cmd *UpdateCheckoutStatusCommand) (*UpdateCheckoutStatusResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "update_checkout_status",
		trace.WithAttributes(
			attribute.String("checkout_id", cmd.CheckoutID),
			attribute.String("payment_status", cmd.PaymentStatus),
		),
	)
	defer span.End()

	status := "error"
	defer func() {
		telemetry.RecordCounter(ctx, "checkout_operations_total", "Total checkout operations", 1,
			attribute.String("operation", "update_checkout_status"),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "checkout_operation_duration_seconds", "Checkout operation duration", time.Since(start).Seconds(),
			attribute.String("operation", "update_checkout_status"),
			attribute.String("status", status),
		)
	}()

	paymentStatus, err := models.ParsePaymentStatus(cmd.PaymentStatus)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment status")
	}

	checkout, err := uc.checkoutRepository.FindByID(ctx, cmd.CheckoutID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find checkout")
	}

	if checkout == nil {
		return nil, apperrors.NotFound("Checkout %s not found", cmd.CheckoutID)
	}

	if checkout.PaymentMethodID == nil && cmd.PaymentMethod != "" {
		method, err := models.ParsePaymentMethod(cmd.PaymentMethod)
		if err != nil {
			return nil, errors.Wrap(err, "invalid payment method")
		}
		checkout.SetPaymentMethod(method)
	}

	if paymentStatus == models.PaymentStatusCompleted {
		if err := checkout.TransitionTo(domain.CheckoutStateCompleted); err != nil {
			return nil, errors.Wrap(err, "failed to complete checkout")
		}
	}

	items, err := uc.checkoutRepository.FindItemsByCheckoutID(ctx, checkout.ID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find checkout items")
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

	if paymentStatus == models.PaymentStatusCompleted && len(items) > 0 {
		if err := uc.eventPublisher.Publish(ctx, newStockCommandEvent(order, items)); err != nil {
			span.RecordError(err)
			return nil, errors.Wrap(err, "failed to dispatch stock command")
		}
	}

	status = "success"

	return &UpdateCheckoutStatusResponse{OrderID: order.ID}, nil
}
