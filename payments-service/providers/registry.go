package providers

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

// PaymentHandler is one payment provider. ProviderID is the payment method
// name the handler is registered under.
type PaymentHandler interface {
	ProviderID() string
	InitPayment(ctx context.Context, req *domain.InitPaymentRequest) (*domain.InitiatedPayment, error)
	CapturePayment(ctx context.Context, req *domain.CapturePaymentRequest) (*domain.CapturedPayment, error)
}

// Registry resolves payment handlers by provider id. It is immutable once
// built.
type Registry struct {
	handlers map[string]PaymentHandler
}

// NewRegistry indexes handlers by provider id. Two handlers claiming the
// same id is a wiring mistake and fails construction.
func NewRegistry(handlers ...PaymentHandler) (*Registry, error) {
	indexed := make(map[string]PaymentHandler, len(handlers))
	for _, handler := range handlers {
		id := handler.ProviderID()
		if id == "" {
			return nil, errors.New("payment handler with empty provider id")
		}
		if _, exists := indexed[id]; exists {
			return nil, errors.Errorf("duplicate payment handler for provider: %s", id)
		}
		indexed[id] = handler
	}

	return &Registry{handlers: indexed}, nil
}

// Get returns the handler for providerID.
func (r *Registry) Get(providerID string) (PaymentHandler, error) {
	handler, ok := r.handlers[providerID]
	if !ok {
		return nil, apperrors.InvalidArgument("No payment handler found for provider: %s", providerID)
	}
	return handler, nil
}

// ProviderIDs lists the registered providers.
func (r *Registry) ProviderIDs() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	return ids
}
