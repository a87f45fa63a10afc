package domain

import (
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/shared/models"
)

// Event Data Structures

type CheckoutCompletedData struct {
	CheckoutID    string               `json:"checkout_id"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
}

type RefundRequestedData struct {
	OrderID    int64           `json:"order_id"`
	CheckoutID string          `json:"checkout_id"`
	PaymentID  *int64          `json:"payment_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}
