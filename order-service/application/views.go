package application

import (
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/order-service/domain"
)

// CheckoutView is the checkout as returned to the storefront.
type CheckoutView struct {
	ID              string             `json:"id"`
	State           string             `json:"state"`
	Email           string             `json:"email"`
	Note            string             `json:"note,omitempty"`
	CouponCode      string             `json:"coupon_code,omitempty"`
	PaymentMethodID *string            `json:"payment_method_id,omitempty"`
	Items           []CheckoutItemView `json:"checkout_items"`
}

type CheckoutItemView struct {
	ID             int64           `json:"id"`
	CheckoutID     string          `json:"checkout_id"`
	ProductID      int64           `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int32           `json:"quantity"`
	ProductPrice   decimal.Decimal `json:"product_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	Note           string          `json:"note,omitempty"`
}

// OrderView is the order as returned to callers of the order endpoints.
type OrderView struct {
	ID            int64           `json:"id"`
	CheckoutID    string          `json:"checkout_id"`
	Status        string          `json:"order_status"`
	PaymentID     *int64          `json:"payment_id,omitempty"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

func newCheckoutView(checkout *domain.Checkout, items []domain.CheckoutItem) *CheckoutView {
	view := &CheckoutView{
		ID:         checkout.ID,
		State:      checkout.State.String(),
		Email:      checkout.Email,
		Note:       checkout.Note,
		CouponCode: checkout.CouponCode,
	}

	if checkout.PaymentMethodID != nil {
		method := checkout.PaymentMethodID.String()
		view.PaymentMethodID = &method
	}

	if items != nil {
		view.Items = make([]CheckoutItemView, 0, len(items))
	}
	for _, item := range items {
		view.Items = append(view.Items, CheckoutItemView{
			ID:             item.ID,
			CheckoutID:     item.CheckoutID,
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

	return view
}

func newOrderView(order *domain.Order) *OrderView {
	return &OrderView{
		ID:            order.ID,
		CheckoutID:    order.CheckoutID,
		Status:        order.Status.String(),
		PaymentID:     order.PaymentID,
		PaymentStatus: string(order.PaymentStatus),
		TotalPrice:    order.TotalPrice,
	}
}
