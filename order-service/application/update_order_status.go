package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/models"
)

const refundReasonLateCapture = "payment captured after the order was cancelled"

// UpdateOrderStatusCommand links a stored payment to its order
type UpdateOrderStatusCommand struct {
	PaymentID     int64   `json:"payment_id"`
	OrderID       int64   `json:"order_id"`
	OrderStatus   *string `json:"order_status,omitempty"`
	PaymentStatus string  `json:"payment_status"`
}

// UpdateOrderStatusResponse acknowledges the update
type UpdateOrderStatusResponse struct {
	OrderID       int64  `json:"order_id"`
	PaymentID     int64  `json:"payment_id"`
	OrderStatus   string `json:"order_status"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateOrderStatus use case
type UpdateOrderStatus struct {
	orderRepository domain.OrderRepository
	eventPublisher  events.Publisher
}

// NewUpdateOrderStatus creates a new UpdateOrderStatus use case
func NewUpdateOrderStatus(orderRepository domain.OrderRepository, eventPublisher events.Publisher) *UpdateOrderStatus {
	return &UpdateOrderStatus{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
	}
}

// Execute records the payment on the order. An explicit order status wins
// over the one derived from the payment.
func (uc *UpdateOrderStatus) Execute(ctx context.Context, cmd *UpdateOrderStatusCommand) (*UpdateOrderStatusResponse, error) {
	paymentStatus, err := models.ParsePaymentStatus(cmd.PaymentStatus)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment status")
	}

	var explicit *domain.OrderStatus
	if cmd.OrderStatus != nil {
		s, err := domain.ParseOrderStatus(*cmd.OrderStatus)
		if err != nil {
			return nil, errors.Wrap(err, "invalid order status")
		}
		explicit = &s
	}

	order, err := uc.orderRepository.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if order == nil {
		return nil, apperrors.NotFound("Order %d not found", cmd.OrderID)
	}

	refundRequired := order.ApplyPayment(cmd.PaymentID, paymentStatus)

	if explicit != nil {
		if err := order.TransitionTo(*explicit); err != nil {
			return nil, errors.Wrap(err, "failed to update order status")
		}
	}

	if err := uc.orderRepository.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	if refundRequired {
		if err := uc.eventPublisher.Publish(ctx, newRefundRequestedEvent(order, refundReasonLateCapture)); err != nil {
			return nil, errors.Wrap(err, "failed to request refund")
		}
	}

	return &UpdateOrderStatusResponse{
		OrderID:       order.ID,
		PaymentID:     cmd.PaymentID,
		OrderStatus:   order.Status.String(),
		PaymentStatus: paymentStatus.String(),
	}, nil
}
