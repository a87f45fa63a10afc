package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/payments-service/providers"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

// CapturePaymentResponse mirrors the capture outcome and the order it was
// recorded on
type CapturePaymentResponse struct {
	PaymentID            int64           `json:"payment_id"`
	OrderID              int64           `json:"order_id"`
	CheckoutID           string          `json:"checkout_id"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentFee           decimal.Decimal `json:"payment_fee"`
	GatewayTransactionID string          `json:"gateway_transaction_id"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status"`
	FailureMessage       string          `json:"failure_message,omitempty"`
}

// CapturePayment confirms a payment with its provider and reports the result
// to the order domain.
type CapturePayment struct {
	registry          *providers.Registry
	paymentRepository domain.PaymentRepository
	orderService      domain.OrderService
}

// NewCapturePayment creates a new CapturePayment use case
func NewCapturePayment(
	registry *providers.Registry,
	paymentRepository domain.PaymentRepository,
	orderService domain.OrderService,
) *CapturePayment {
	return &CapturePayment{
		registry:          registry,
		paymentRepository: paymentRepository,
		orderService:      orderService,
	}
}

// Execute captures, resolves the order, stores the payment and then records
// it on the order. An order domain failure, CircuitOpen included, aborts the
// capture with that error; if the order cannot be resolved no payment is
// stored.
func (uc *CapturePayment) Execute(ctx context.Context, req *domain.CapturePaymentRequest) (*CapturePaymentResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "capture_payment",
		trace.WithAttributes(
			attribute.String("checkout_id", req.CheckoutID),
			attribute.String("payment_method", req.PaymentMethod),
		),
	)
	defer span.End()

	status := "error"
	defer func() {
		telemetry.RecordCounter(ctx, "payment_captures_total", "Total payment captures", 1,
			attribute.String("payment_method", req.PaymentMethod),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "payment_capture_duration_seconds", "Payment capture duration", time.Since(start).Seconds(),
			attribute.String("payment_method", req.PaymentMethod),
			attribute.String("status", status),
		)
	}()

	handler, err := uc.registry.Get(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	captured, err := handler.CapturePayment(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	orderID, err := uc.orderService.UpdateCheckoutStatus(ctx, captured)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to report capture")
	}
	captured.OrderID = &orderID

	payment := domain.NewPaymentFromCapture(captured, orderID)
	if err := uc.paymentRepository.Create(ctx, payment); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to save payment")
	}

	span.SetAttributes(
		attribute.Int64("order_id", orderID),
		attribute.Int64("payment_id", payment.ID),
		attribute.String("payment_status", captured.PaymentStatus.String()),
	)

	if _, err := uc.orderService.UpdateOrderStatus(ctx, &domain.OrderStatusUpdate{
		PaymentID:     payment.ID,
		OrderID:       orderID,
		PaymentStatus: captured.PaymentStatus.String(),
	}); err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "failed to record payment %d on order %d", payment.ID, orderID)
	}

	status = captured.PaymentStatus.String()

	return &CapturePaymentResponse{
		PaymentID:            payment.ID,
		OrderID:              orderID,
		CheckoutID:           captured.CheckoutID,
		Amount:               captured.Amount,
		PaymentFee:           captured.PaymentFee,
		GatewayTransactionID: captured.GatewayTransactionID,
		PaymentMethod:        captured.PaymentMethod.String(),
		PaymentStatus:        captured.PaymentStatus.String(),
		FailureMessage:       captured.FailureMessage,
	}, nil
}
