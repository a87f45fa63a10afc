package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/shared/models"
)

// Payment is an append-only record of one payment attempt.
type Payment struct {
	ID                   int64
	CheckoutID           string
	OrderID              *int64
	PaymentMethod        models.PaymentMethod
	Status               models.PaymentStatus
	Amount               decimal.Decimal
	PaymentFee           decimal.Decimal
	GatewayTransactionID string
	FailureMessage       *string
	// SourceEventID is the checkout event a payment was created from, if any.
	SourceEventID *string
	CreatedAt     time.Time
}

// NewPaymentFromCheckout builds the payment expected for a completed checkout.
// Cash on delivery waits as NEW; every electronic method is PROCESSING until
// its capture confirms it.
func NewPaymentFromCheckout(checkoutID string, method models.PaymentMethod, amount decimal.Decimal, sourceEventID string) *Payment {
	status := models.PaymentStatusProcessing
	if method == models.PaymentMethodCOD {
		status = models.PaymentStatusNew
	}

	payment := &Payment{
		CheckoutID:    checkoutID,
		PaymentMethod: method,
		Status:        status,
		Amount:        amount,
		PaymentFee:    decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}
	if sourceEventID != "" {
		payment.SourceEventID = &sourceEventID
	}

	return payment
}

// NewPaymentFromCapture records a capture outcome for orderID.
func NewPaymentFromCapture(captured *CapturedPayment, orderID int64) *Payment {
	payment := &Payment{
		CheckoutID:           captured.CheckoutID,
		OrderID:              &orderID,
		PaymentMethod:        captured.PaymentMethod,
		Status:               captured.PaymentStatus,
		Amount:               captured.Amount,
		PaymentFee:           captured.PaymentFee,
		GatewayTransactionID: captured.GatewayTransactionID,
		CreatedAt:            time.Now().UTC(),
	}
	if captured.FailureMessage != "" {
		payment.FailureMessage = models.StringPtr(captured.FailureMessage)
	}

	return payment
}

// PaymentRepository stores payments. There is no update: every attempt is a
// new row.
type PaymentRepository interface {
	// Create inserts payment and sets its ID. A payment carrying a
	// SourceEventID that was already stored resolves to the existing row.
	Create(ctx context.Context, payment *Payment) error
	// FindByID returns nil, nil when the payment does not exist.
	FindByID(ctx context.Context, id int64) (*Payment, error)
}
