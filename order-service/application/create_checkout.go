package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/order-service/domain"
)

// CreateCheckoutCommand represents the command to submit a checkout
type CreateCheckoutCommand struct {
	Email      string                      `json:"email"`
	Note       string                      `json:"note"`
	CouponCode string                      `json:"coupon_code"`
	CreatedBy  string                      `json:"-"`
	Items      []CreateCheckoutItemCommand `json:"checkout_items"`
}

type CreateCheckoutItemCommand struct {
	ProductID      int64           `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int32           `json:"quantity"`
	ProductPrice   decimal.Decimal `json:"product_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	Note           string          `json:"note"`
}

// CreateCheckout use case
type CreateCheckout struct {
	checkoutRepository domain.CheckoutRepository
}

// NewCreateCheckout creates a new CreateCheckout use case
func NewCreateCheckout(checkoutRepository domain.CheckoutRepository) *CreateCheckout {
	return &CreateCheckout{checkoutRepository: checkoutRepository}
}

// Execute stores a PENDING checkout with its items and returns it with the
// generated ids.
func (uc *CreateCheckout) Execute(ctx context.Context, cmd *CreateCheckoutCommand) (*CheckoutView, error) {
	items := make([]domain.CheckoutItem, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		items = append(items, domain.CheckoutItem{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			ProductPrice:   item.ProductPrice,
			DiscountAmount: item.DiscountAmount,
			TaxAmount:      item.TaxAmount,
			TaxPercent:     item.TaxPercent,
			Note:           item.Note,
		})
	}

	checkout, err := domain.NewCheckout(cmd.Email, cmd.Note, cmd.CouponCode, cmd.CreatedBy, items)
	if err != nil {
		return nil, errors.Wrap(err, "invalid checkout")
	}

	if err := uc.checkoutRepository.Create(ctx, checkout); err != nil {
		return nil, errors.Wrap(err, "failed to create checkout")
	}

	return newCheckoutView(checkout, checkout.Items), nil
}
