package domain

import "context"

// OrderStatusUpdate reports a stored payment to the order domain.
type OrderStatusUpdate struct {
	PaymentID     int64   `json:"payment_id"`
	OrderID       int64   `json:"order_id"`
	OrderStatus   *string `json:"order_status,omitempty"`
	PaymentStatus string  `json:"payment_status"`
}

// OrderStatusAck is the order domain's acknowledgement of an OrderStatusUpdate.
type OrderStatusAck struct {
	OrderID       int64  `json:"order_id"`
	PaymentID     int64  `json:"payment_id"`
	OrderStatus   string `json:"order_status"`
	PaymentStatus string `json:"payment_status"`
}

// OrderService is the synchronous order domain the capture flow reports to.
// Calls fail with a CircuitOpen error while the dependency is degraded.
type OrderService interface {
	// UpdateCheckoutStatus hands over a captured payment and returns the id
	// of the order it belongs to.
	UpdateCheckoutStatus(ctx context.Context, captured *CapturedPayment) (int64, error)
	UpdateOrderStatus(ctx context.Context, update *OrderStatusUpdate) (*OrderStatusAck, error)
}
