package application

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/payments-service/providers"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

// InitPaymentResponse is the provider's answer to a payment init
type InitPaymentResponse struct {
	Status      string `json:"status"`
	PaymentID   string `json:"payment_id"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// InitPayment starts a payment with the provider named by the request's
// payment method. Nothing is stored.
type InitPayment struct {
	registry *providers.Registry
}

// NewInitPayment creates a new InitPayment use case
func NewInitPayment(registry *providers.Registry) *InitPayment {
	return &InitPayment{registry: registry}
}

// Execute returns provider errors unmodified.
func (uc *InitPayment) Execute(ctx context.Context, req *domain.InitPaymentRequest) (*InitPaymentResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "init_payment",
		trace.WithAttributes(
			attribute.String("checkout_id", req.CheckoutID),
			attribute.String("payment_method", req.PaymentMethod),
		),
	)
	defer span.End()

	handler, err := uc.registry.Get(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	initiated, err := handler.InitPayment(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &InitPaymentResponse{
		Status:      initiated.Status.String(),
		PaymentID:   initiated.PaymentID,
		RedirectURL: initiated.RedirectURL,
	}, nil
}
