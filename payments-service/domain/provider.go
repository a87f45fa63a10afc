package domain

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/shared/models"
)

// InitPaymentRequest starts a payment with a provider.
type InitPaymentRequest struct {
	PaymentMethod string          `json:"payment_method"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CheckoutID    string          `json:"checkout_id"`
}

// InitiatedPayment is the provider's answer to an init request. RedirectURL
// is empty for providers that need no customer approval.
type InitiatedPayment struct {
	Status      models.PaymentStatus
	PaymentID   string
	RedirectURL string
}

// CapturePaymentRequest confirms a previously initiated payment.
type CapturePaymentRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Token         string          `json:"token"`
	CheckoutID    string          `json:"checkout_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// CapturedPayment is the capture outcome. A declined capture is a FAILED
// status with a FailureMessage, not an error.
type CapturedPayment struct {
	OrderID              *int64
	CheckoutID           string
	Amount               decimal.Decimal
	PaymentFee           decimal.Decimal
	GatewayTransactionID string
	PaymentMethod        models.PaymentMethod
	PaymentStatus        models.PaymentStatus
	FailureMessage       string
}

// BankTransaction is a transaction opened with the bank, awaiting customer
// approval at ApprovalURL.
type BankTransaction struct {
	Reference   string `json:"reference"`
	ApprovalURL string `json:"approval_url"`
}

// BankCapture is the bank's settlement answer for an approved transaction.
type BankCapture struct {
	Approved      bool            `json:"approved"`
	TransactionID string          `json:"transaction_id"`
	Fee           decimal.Decimal `json:"fee"`
	DeclineReason string          `json:"decline_reason,omitempty"`
}

// BankGateway is the remote bank the BANKING provider settles through.
type BankGateway interface {
	CreateTransaction(ctx context.Context, checkoutID string, amount decimal.Decimal) (*BankTransaction, error)
	CaptureTransaction(ctx context.Context, token string, amount decimal.Decimal) (*BankCapture, error)
}
