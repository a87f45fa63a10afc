package providers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/models"
)

// CODHandler settles cash on delivery. Nothing leaves the system: init
// acknowledges the payment and capture completes it without a fee.
type CODHandler struct{}

func NewCODHandler() *CODHandler {
	return &CODHandler{}
}

func (h *CODHandler) ProviderID() string {
	return models.PaymentMethodCOD.String()
}

func (h *CODHandler) InitPayment(_ context.Context, req *domain.InitPaymentRequest) (*domain.InitiatedPayment, error) {
	return &domain.InitiatedPayment{
		Status:    models.PaymentStatusNew,
		PaymentID: "cod-" + req.CheckoutID,
	}, nil
}

func (h *CODHandler) CapturePayment(_ context.Context, req *domain.CapturePaymentRequest) (*domain.CapturedPayment, error) {
	return &domain.CapturedPayment{
		CheckoutID:           req.CheckoutID,
		Amount:               req.Amount,
		PaymentFee:           decimal.Zero,
		GatewayTransactionID: "cod-" + req.CheckoutID,
		PaymentMethod:        models.PaymentMethodCOD,
		PaymentStatus:        models.PaymentStatusCompleted,
	}, nil
}
