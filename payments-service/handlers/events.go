package handlers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/payments-service/application"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/events"
)

// checkoutCompletedData is the checkout.completed payload
type checkoutCompletedData struct {
	CheckoutID    string          `json:"checkout_id"`
	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// CheckoutCompletedHandler records the expected payment of every completed
// checkout
type CheckoutCompletedHandler struct {
	createPayment *application.CreatePaymentFromEvent
	logger        *zap.Logger
}

// NewCheckoutCompletedHandler creates a new CheckoutCompletedHandler
func NewCheckoutCompletedHandler(createPayment *application.CreatePaymentFromEvent, logger *zap.Logger) *CheckoutCompletedHandler {
	return &CheckoutCompletedHandler{
		createPayment: createPayment,
		logger:        logger,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *CheckoutCompletedHandler) HandlerID() string {
	return "payments-service-checkout-completed-handler"
}

// Handle creates the payment. Events that can never succeed are logged and
// dropped; other failures are returned for redelivery.
func (h *CheckoutCompletedHandler) Handle(ctx context.Context, event *events.Event) error {
	logger := h.logger.With(zap.String("event_id", event.ID.String()))

	var data checkoutCompletedData
	if err := event.UnmarshalPayload(&data); err != nil {
		logger.Warn("dropping malformed checkout completed event", zap.Error(err))
		return nil
	}

	paymentID, err := h.createPayment.Execute(ctx, &application.CreatePaymentFromEventCommand{
		EventID:       event.ID.String(),
		CheckoutID:    data.CheckoutID,
		PaymentMethod: data.PaymentMethod,
		TotalAmount:   data.TotalAmount,
	})
	if apperrors.IsKind(err, apperrors.KindInvalidArgument) {
		logger.Warn("dropping invalid checkout completed event",
			zap.String("checkout_id", data.CheckoutID),
			zap.Error(err),
		)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to create payment for checkout %s", data.CheckoutID)
	}

	logger.Info("payment created from checkout",
		zap.String("checkout_id", data.CheckoutID),
		zap.Int64("payment_id", paymentID),
	)

	return nil
}
