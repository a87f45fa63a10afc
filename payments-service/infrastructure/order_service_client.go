package infrastructure

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/resilience"
)

// OrderServiceClient calls the order service's internal endpoints through a
// circuit breaker. It never retries; a rejected call fails with CircuitOpen
// without reaching the network.
type OrderServiceClient struct {
	baseURL    string
	httpClient *http.Client
	resilient  *resilience.Client
}

func NewOrderServiceClient(baseURL string, httpClient *http.Client, resilient *resilience.Client) *OrderServiceClient {
	return &OrderServiceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		resilient:  resilient,
	}
}

type checkoutStatusRequest struct {
	CheckoutID           string          `json:"checkout_id"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentFee           decimal.Decimal `json:"payment_fee"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status"`
	GatewayTransactionID string          `json:"gateway_transaction_id"`
	FailureMessage       string          `json:"failure_message,omitempty"`
}

type checkoutStatusResponse struct {
	OrderID int64 `json:"order_id"`
}

// UpdateCheckoutStatus reports a capture and returns the order it belongs to.
func (c *OrderServiceClient) UpdateCheckoutStatus(ctx context.Context, captured *domain.CapturedPayment) (int64, error) {
	body := &checkoutStatusRequest{
		CheckoutID:           captured.CheckoutID,
		Amount:               captured.Amount,
		PaymentFee:           captured.PaymentFee,
		PaymentMethod:        captured.PaymentMethod.String(),
		PaymentStatus:        captured.PaymentStatus.String(),
		GatewayTransactionID: captured.GatewayTransactionID,
		FailureMessage:       captured.FailureMessage,
	}

	resp, err := resilience.Do(ctx, c.resilient, func(ctx context.Context) (*checkoutStatusResponse, error) {
		var out checkoutStatusResponse
		if err := doJSON(ctx, c.httpClient, http.MethodPut, c.baseURL+"/internal/checkouts/status", body, &out); err != nil {
			return nil, mapOrderServiceError(err)
		}
		return &out, nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to update status of checkout %s", captured.CheckoutID)
	}

	return resp.OrderID, nil
}

// UpdateOrderStatus records a stored payment on its order.
func (c *OrderServiceClient) UpdateOrderStatus(ctx context.Context, update *domain.OrderStatusUpdate) (*domain.OrderStatusAck, error) {
	ack, err := resilience.Do(ctx, c.resilient, func(ctx context.Context) (*domain.OrderStatusAck, error) {
		var out domain.OrderStatusAck
		if err := doJSON(ctx, c.httpClient, http.MethodPut, c.baseURL+"/internal/orders/status", update, &out); err != nil {
			return nil, mapOrderServiceError(err)
		}
		return &out, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update status of order %d", update.OrderID)
	}

	return ack, nil
}

func mapOrderServiceError(err error) error {
	var status *statusError
	if !errors.As(err, &status) {
		return err
	}

	switch {
	case status.StatusCode == http.StatusNotFound:
		return apperrors.NotFound("order service: %s", status.Body)
	case status.StatusCode == http.StatusBadRequest:
		return apperrors.InvalidArgument("order service: %s", status.Body)
	default:
		return errors.Errorf("order service responded %d: %s", status.StatusCode, status.Body)
	}
}
