package application

import (
	"github.com/shopspring/decimal"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/models"
)

const (
	testCheckoutID = "9a4f7a0c-2b6e-4c1d-8f51-0d7b3b1f5e21"
	testOwnerID    = "customer-1"
)

func pendingCheckout(method *models.PaymentMethod) *domain.Checkout {
	return &domain.Checkout{
		ID:              testCheckoutID,
		State:           domain.CheckoutStatePending,
		Email:           "buyer@example.com",
		PaymentMethodID: method,
		CreatedBy:       testOwnerID,
		Timestamps:      models.NewTimestamps(),
	}
}

func checkoutItems() []domain.CheckoutItem {
	return []domain.CheckoutItem{
		{ID: 1, CheckoutID: testCheckoutID, ProductID: 10, ProductName: "Mug", Quantity: 2, ProductPrice: decimal.NewFromInt(15)},
		{ID: 2, CheckoutID: testCheckoutID, ProductID: 11, ProductName: "Tea", Quantity: 1, ProductPrice: decimal.NewFromInt(20)},
	}
}

func methodPtr(m models.PaymentMethod) *models.PaymentMethod {
	return &m
}

func placedOrder(id int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:         id,
		CheckoutID: testCheckoutID,
		Email:      "buyer@example.com",
		Status:     status,
		TotalPrice: decimal.NewFromInt(50),
		Timestamps: models.NewTimestamps(),
		Version:    models.NewVersion(),
	}
}
