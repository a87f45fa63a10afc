package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

// GetPendingCheckoutQuery represents the query for a caller's pending checkout
type GetPendingCheckoutQuery struct {
	CheckoutID string
	CallerID   string
}

// GetPendingCheckout use case
type GetPendingCheckout struct {
	checkoutRepository domain.CheckoutRepository
}

// NewGetPendingCheckout creates a new GetPendingCheckout use case
func NewGetPendingCheckout(checkoutRepository domain.CheckoutRepository) *GetPendingCheckout {
	return &GetPendingCheckout{checkoutRepository: checkoutRepository}
}

// Execute returns the pending checkout if the caller created it.
func (uc *GetPendingCheckout) Execute(ctx context.Context, query *GetPendingCheckoutQuery) (*CheckoutView, error) {
	checkout, err := uc.checkoutRepository.FindByIDAndState(ctx, query.CheckoutID, domain.CheckoutStatePending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find checkout")
	}

	if checkout == nil {
		return nil, apperrors.NotFound("Checkout %s not found", query.CheckoutID)
	}

	if !checkout.IsOwnedBy(query.CallerID) {
		return nil, apperrors.Forbidden("You don't have permission to access this page")
	}

	items, err := uc.checkoutRepository.FindItemsByCheckoutID(ctx, checkout.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find checkout items")
	}

	if len(items) == 0 {
		items = nil
	}

	return newCheckoutView(checkout, items), nil
}
