package domain

import (
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
)

// CheckoutState is the lifecycle state of a checkout. PENDING is the only
// non-terminal state.
type CheckoutState string

const (
	CheckoutStatePending   CheckoutState = "PENDING"
	CheckoutStateCompleted CheckoutState = "COMPLETED"
	CheckoutStateCancelled CheckoutState = "CANCELLED"
)

func (s CheckoutState) String() string {
	return string(s)
}

// Checkout aggregate root
type Checkout struct {
	ID              string
	State           CheckoutState
	Email           string
	CouponCode      string
	Note            string
	PaymentMethodID *models.PaymentMethod
	CreatedBy       string
	Items           []CheckoutItem
	Timestamps      models.Timestamps
}

// CheckoutItem is a product line snapshot taken when the checkout is submitted.
type CheckoutItem struct {
	ID             int64
	CheckoutID     string
	ProductID      int64
	ProductName    string
	Quantity       int32
	ProductPrice   decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TaxPercent     decimal.Decimal
	Note           string
}

// LineTotal is price * quantity - discount + tax.
func (i CheckoutItem) LineTotal() decimal.Decimal {
	return models.LineTotal(i.ProductPrice, i.Quantity, i.DiscountAmount, i.TaxAmount)
}

// NewCheckout creates a PENDING checkout owned by createdBy. Items keep the
// submitted order and reference the new checkout id.
func NewCheckout(email, note, couponCode, createdBy string, items []CheckoutItem) (*Checkout, error) {
	checkout := &Checkout{
		ID:         models.GenerateUUID().String(),
		State:      CheckoutStatePending,
		Email:      email,
		CouponCode: couponCode,
		Note:       note,
		CreatedBy:  createdBy,
		Items:      make([]CheckoutItem, 0, len(items)),
		Timestamps: models.NewTimestamps(),
	}

	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, apperrors.InvalidArgument("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		item.CheckoutID = checkout.ID
		checkout.Items = append(checkout.Items, item)
	}

	return checkout, nil
}

// IsOwnedBy reports whether callerID created the checkout.
func (c *Checkout) IsOwnedBy(callerID string) bool {
	return c.CreatedBy == callerID
}

// SetPaymentMethod assigns the method the customer will pay with.
func (c *Checkout) SetPaymentMethod(method models.PaymentMethod) {
	c.PaymentMethodID = &method
	c.Timestamps = c.Timestamps.Touch()
}

// TransitionTo moves the checkout to state. Moving to the current state is
// a no-op; leaving a terminal state is rejected.
func (c *Checkout) TransitionTo(state CheckoutState) error {
	if c.State == state {
		return nil
	}

	if c.State != CheckoutStatePending {
		return apperrors.InvalidArgument("checkout %s cannot move from %s to %s", c.ID, c.State, state)
	}

	switch state {
	case CheckoutStateCompleted, CheckoutStateCancelled:
		c.State = state
		c.Timestamps = c.Timestamps.Touch()
		return nil
	default:
		return apperrors.InvalidArgument("checkout %s cannot move from %s to %s", c.ID, c.State, state)
	}
}

// TotalAmount sums the line totals of items.
func TotalAmount(items []CheckoutItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
