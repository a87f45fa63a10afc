package providers

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

// BankingHandler settles through a bank gateway. The customer approves the
// transaction at the bank, so init hands back a redirect and the payment
// stays PROCESSING until captured.
type BankingHandler struct {
	gateway domain.BankGateway
}

func NewBankingHandler(gateway domain.BankGateway) *BankingHandler {
	return &BankingHandler{gateway: gateway}
}

func (h *BankingHandler) ProviderID() string {
	return models.PaymentMethodBanking.String()
}

func (h *BankingHandler) InitPayment(ctx context.Context, req *domain.InitPaymentRequest) (*domain.InitiatedPayment, error) {
	if !req.TotalPrice.IsPositive() {
		return nil, apperrors.InvalidArgument("total price must be positive")
	}

	tx, err := h.gateway.CreateTransaction(ctx, req.CheckoutID, req.TotalPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bank transaction")
	}

	return &domain.InitiatedPayment{
		Status:      models.PaymentStatusProcessing,
		PaymentID:   tx.Reference,
		RedirectURL: tx.ApprovalURL,
	}, nil
}

// CapturePayment settles the transaction identified by req.Token. A declined
// transaction is reported as a FAILED capture.
func (h *BankingHandler) CapturePayment(ctx context.Context, req *domain.CapturePaymentRequest) (*domain.CapturedPayment, error) {
	if req.Token == "" {
		return nil, apperrors.InvalidArgument("capture token is required")
	}

	capture, err := h.gateway.CaptureTransaction(ctx, req.Token, req.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to capture bank transaction")
	}

	captured := &domain.CapturedPayment{
		CheckoutID:           req.CheckoutID,
		Amount:               req.Amount,
		PaymentFee:           capture.Fee,
		GatewayTransactionID: capture.TransactionID,
		PaymentMethod:        models.PaymentMethodBanking,
		PaymentStatus:        models.PaymentStatusCompleted,
	}
	if !capture.Approved {
		captured.PaymentStatus = models.PaymentStatusFailed
		captured.FailureMessage = capture.DeclineReason
		if captured.FailureMessage == "" {
			captured.FailureMessage = "declined by bank"
		}
	}

	return captured, nil
}
