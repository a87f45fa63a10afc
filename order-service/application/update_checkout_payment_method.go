package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

// UpdateCheckoutPaymentMethodCommand represents the command to choose how a checkout is paid
type UpdateCheckoutPaymentMethodCommand struct {
	CheckoutID      string  `json:"-"`
	PaymentMethodID *string `json:"payment_method_id"`
}

// UpdateCheckoutPaymentMethod use case
type UpdateCheckoutPaymentMethod struct {
	checkoutRepository domain.CheckoutRepository
}

// NewUpdateCheckoutPaymentMethod creates a new UpdateCheckoutPaymentMethod use case
func NewUpdateCheckoutPaymentMethod(checkoutRepository domain.CheckoutRepository) *UpdateCheckoutPaymentMethod {
	return &UpdateCheckoutPaymentMethod{checkoutRepository: checkoutRepository}
}

// Execute sets the payment method. A command without a method leaves the
// checkout untouched.
func (uc *UpdateCheckoutPaymentMethod) Execute(ctx context.Context, cmd *UpdateCheckoutPaymentMethodCommand) error {
	checkout, err := uc.checkoutRepository.FindByID(ctx, cmd.CheckoutID)
	if err != nil {
		return errors.Wrap(err, "failed to find checkout")
	}

	if checkout == nil {
		return apperrors.NotFound("Checkout %s not found", cmd.CheckoutID)
	}

	if cmd.PaymentMethodID == nil {
		return nil
	}

	method, err := models.ParsePaymentMethod(*cmd.PaymentMethodID)
	if err != nil {
		return errors.Wrap(err, "invalid payment method")
	}

	checkout.SetPaymentMethod(method)

	if err := uc.checkoutRepository.Save(ctx, checkout); err != nil {
		return errors.Wrap(err, "failed to save checkout")
	}

	return nil
}
