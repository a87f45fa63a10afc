package domain

import (
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusRefundPending  OrderStatus = "REFUND_PENDING"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusPendingPayment, OrderStatusPaid, OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusPendingPayment: {OrderStatusPaid, OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusAccepted, OrderStatusRefundPending},
	OrderStatusAccepted:       {},
	OrderStatusCancelled:      {OrderStatusRefundPending},
	OrderStatusRefundPending:  {OrderStatusCancelled},
}

func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(value)
	if _, ok := orderTransitions[status]; !ok {
		return "", apperrors.InvalidArgument("unknown order status: %s", value)
	}
	return status, nil
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is created once per completed checkout.
type Order struct {
	ID            int64
	CheckoutID    string
	Email         string
	Status        OrderStatus
	PaymentID     *int64
	PaymentStatus models.PaymentStatus
	TotalPrice    decimal.Decimal
	Timestamps    models.Timestamps
	// Version is the stored version the order was loaded with. Save moves it
	// forward once.
	Version models.Version
}

// NewOrder builds the order for a checkout. Orders paid on delivery start
// PENDING; every other method waits for the payment capture.
func NewOrder(checkout *Checkout, items []CheckoutItem) *Order {
	status := OrderStatusPendingPayment
	if checkout.PaymentMethodID != nil && *checkout.PaymentMethodID == models.PaymentMethodCOD {
		status = OrderStatusPending
	}

	return &Order{
		CheckoutID: checkout.ID,
		Email:      checkout.Email,
		Status:     status,
		TotalPrice: TotalAmount(items),
		Timestamps: models.NewTimestamps(),
		Version:    models.NewVersion(),
	}
}

// TransitionTo moves the order to status. Moving to the current status is a
// no-op.
func (o *Order) TransitionTo(status OrderStatus) error {
	if o.Status == status {
		return nil
	}

	for _, allowed := range orderTransitions[o.Status] {
		if allowed == status {
			o.Status = status
			o.Timestamps = o.Timestamps.Touch()
			return nil
		}
	}

	return apperrors.InvalidArgument("order %d cannot move from %s to %s", o.ID, o.Status, status)
}

// ApplyPayment records the payment outcome. A completed payment marks an
// unpaid order PAID; on an order already cancelled by a stock failure it
// moves to REFUND_PENDING. refundRequired is true whenever a completed
// payment leaves the order REFUND_PENDING, including a redelivered capture,
// so the refund request is published again.
func (o *Order) ApplyPayment(paymentID int64, status models.PaymentStatus) (refundRequired bool) {
	o.PaymentID = &paymentID
	o.PaymentStatus = status
	o.Timestamps = o.Timestamps.Touch()

	if status != models.PaymentStatusCompleted {
		return false
	}

	switch o.Status {
	case OrderStatusPending, OrderStatusPendingPayment:
		o.Status = OrderStatusPaid
	case OrderStatusCancelled:
		o.Status = OrderStatusRefundPending
	}

	return o.Status == OrderStatusRefundPending
}

// ApplyStockResult reconciles the order with the stock participant's reply.
// Success accepts the order. Failure cancels an unpaid order, or moves a paid
// one to REFUND_PENDING; a captured payment is never cancelled. Replies for
// orders already past this step change nothing, but a redelivered failure on
// a REFUND_PENDING order still reports refundRequired.
func (o *Order) ApplyStockResult(success bool) (changed, refundRequired bool) {
	var target OrderStatus

	switch {
	case success && (o.Status == OrderStatusPending || o.Status == OrderStatusPendingPayment || o.Status == OrderStatusPaid):
		target = OrderStatusAccepted
	case !success && o.Status == OrderStatusPaid:
		target = OrderStatusRefundPending
		refundRequired = true
	case !success && (o.Status == OrderStatusPending || o.Status == OrderStatusPendingPayment):
		target = OrderStatusCancelled
	default:
		return false, !success && o.Status == OrderStatusRefundPending
	}

	o.Status = target
	o.Timestamps = o.Timestamps.Touch()

	return true, refundRequired
}
