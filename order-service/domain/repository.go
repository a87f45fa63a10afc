package domain

import "context"

// CheckoutRepository persists checkouts and their items. Lookups return
// nil, nil when nothing matches.
type CheckoutRepository interface {
	// Create inserts the checkout and its items in one transaction and fills in item ids.
	Create(ctx context.Context, checkout *Checkout) error
	Save(ctx context.Context, checkout *Checkout) error
	FindByID(ctx context.Context, id string) (*Checkout, error)
	FindByIDAndState(ctx context.Context, id string, state CheckoutState) (*Checkout, error)
	FindItemsByCheckoutID(ctx context.Context, checkoutID string) ([]CheckoutItem, error)
}

// OrderRepository persists orders. Lookups return nil, nil when nothing matches.
type OrderRepository interface {
	// PlaceOrder saves the checkout state and inserts order unless the
	// checkout already has one, in one transaction. It returns the stored
	// order and whether it was created by this call.
	PlaceOrder(ctx context.Context, checkout *Checkout, order *Order) (*Order, bool, error)
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindByCheckoutID(ctx context.Context, checkoutID string) (*Order, error)
}
