package infrastructure

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

// HTTPBankGateway talks to the bank's transaction API.
type HTTPBankGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPBankGateway(baseURL string, client *http.Client) *HTTPBankGateway {
	return &HTTPBankGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type bankTransactionRequest struct {
	CheckoutID string          `json:"checkout_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type bankCaptureRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreateTransaction opens a transaction the customer approves at the bank.
func (g *HTTPBankGateway) CreateTransaction(ctx context.Context, checkoutID string, amount decimal.Decimal) (*domain.BankTransaction, error) {
	var tx domain.BankTransaction
	err := doJSON(ctx, g.client, http.MethodPost, g.baseURL+"/transactions",
		&bankTransactionRequest{CheckoutID: checkoutID, Amount: amount}, &tx)
	if err != nil {
		return nil, mapBankError(err, "create transaction")
	}
	if tx.Reference == "" {
		return nil, errors.New("bank returned a transaction without reference")
	}
	return &tx, nil
}

// CaptureTransaction settles the transaction approved under token. The bank
// answers declines with 200 and approved=false.
func (g *HTTPBankGateway) CaptureTransaction(ctx context.Context, token string, amount decimal.Decimal) (*domain.BankCapture, error) {
	var capture domain.BankCapture
	err := doJSON(ctx, g.client, http.MethodPost, g.baseURL+"/transactions/"+url.PathEscape(token)+"/capture",
		&bankCaptureRequest{Amount: amount}, &capture)
	if err != nil {
		return nil, mapBankError(err, "capture transaction")
	}
	return &capture, nil
}

func mapBankError(err error, op string) error {
	var status *statusError
	if errors.As(err, &status) {
		switch {
		case status.StatusCode == http.StatusNotFound:
			return apperrors.NotFound("bank %s: unknown transaction", op)
		case status.StatusCode >= 400 && status.StatusCode < 500:
			return apperrors.InvalidArgument("bank rejected %s: %s", op, status.Body)
		}
	}
	return errors.Wrapf(err, "bank %s failed", op)
}
