package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

// GetPaymentQuery represents the query to get a payment
type GetPaymentQuery struct {
	PaymentID int64 `json:"payment_id"`
}

// GetPaymentResponse represents the response for getting a payment
type GetPaymentResponse struct {
	PaymentID            int64           `json:"payment_id"`
	CheckoutID           string          `json:"checkout_id"`
	OrderID              *int64          `json:"order_id,omitempty"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentFee           decimal.Decimal `json:"payment_fee"`
	GatewayTransactionID string          `json:"gateway_transaction_id,omitempty"`
	FailureMessage       *string         `json:"failure_message,omitempty"`
	CreatedAt            string          `json:"created_at"`
}

// GetPayment use case
type GetPayment struct {
	paymentRepository domain.PaymentRepository
}

// NewGetPayment creates a new GetPayment use case
func NewGetPayment(paymentRepository domain.PaymentRepository) *GetPayment {
	return &GetPayment{
		paymentRepository: paymentRepository,
	}
}

// Execute executes the get payment use case
func (uc *GetPayment) Execute(ctx context.Context, query *GetPaymentQuery) (*GetPaymentResponse, error) {
	if query.PaymentID <= 0 {
		return nil, apperrors.InvalidArgument("payment ID is required")
	}

	payment, err := uc.paymentRepository.FindByID(ctx, query.PaymentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	if payment == nil {
		return nil, apperrors.NotFound("Payment %d not found", query.PaymentID)
	}

	return &GetPaymentResponse{
		PaymentID:            payment.ID,
		CheckoutID:           payment.CheckoutID,
		OrderID:              payment.OrderID,
		PaymentMethod:        payment.PaymentMethod.String(),
		PaymentStatus:        payment.Status.String(),
		Amount:               payment.Amount,
		PaymentFee:           payment.PaymentFee,
		GatewayTransactionID: payment.GatewayTransactionID,
		FailureMessage:       payment.FailureMessage,
		CreatedAt:            payment.CreatedAt.Format(time.RFC3339),
	}, nil
}
