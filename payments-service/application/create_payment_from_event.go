package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

// CreatePaymentFromEventCommand is a completed checkout announced on the bus
type CreatePaymentFromEventCommand struct {
	EventID       string
	CheckoutID    string
	PaymentMethod string
	TotalAmount   decimal.Decimal
}

// CreatePaymentFromEvent records the payment a completed checkout expects.
// It never calls the order domain.
type CreatePaymentFromEvent struct {
	paymentRepository domain.PaymentRepository
}

// NewCreatePaymentFromEvent creates a new CreatePaymentFromEvent use case
func NewCreatePaymentFromEvent(paymentRepository domain.PaymentRepository) *CreatePaymentFromEvent {
	return &CreatePaymentFromEvent{paymentRepository: paymentRepository}
}

// Execute returns the id of the stored payment. A redelivered event returns
// the id stored the first time.
func (uc *CreatePaymentFromEvent) Execute(ctx context.Context, cmd *CreatePaymentFromEventCommand) (int64, error) {
	if cmd.CheckoutID == "" {
		return 0, apperrors.InvalidArgument("checkout ID is required")
	}

	method, err := models.ParsePaymentMethod(cmd.PaymentMethod)
	if err != nil {
		return 0, err
	}

	payment := domain.NewPaymentFromCheckout(cmd.CheckoutID, method, cmd.TotalAmount, cmd.EventID)
	if err := uc.paymentRepository.Create(ctx, payment); err != nil {
		return 0, errors.Wrap(err, "failed to save payment")
	}

	return payment.ID, nil
}
