package application

import (
	"strconv"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/models"
	"github.com/shopyard/fulfillment/shared/saga"
)

// Event ids below are derived from the aggregate so that publishing the same
// step twice yields the same message and consumers drop the duplicate.

func orderCorrelationID(orderID int64) models.ID {
	return models.ID(strconv.FormatInt(orderID, 10))
}

// ParseOrderCorrelationID recovers the order id carried as correlation id on
// stock saga messages.
func ParseOrderCorrelationID(correlationID models.ID) (int64, error) {
	return strconv.ParseInt(correlationID.String(), 10, 64)
}

func newStockCommandEvent(order *domain.Order, items []domain.CheckoutItem) *events.Event {
	command := saga.StockCommand{
		OrderID:      order.ID,
		CheckoutID:   order.CheckoutID,
		ProductItems: make([]saga.ProductItem, 0, len(items)),
	}
	for _, item := range items {
		command.ProductItems = append(command.ProductItems, saga.ProductItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return events.NewEvent(models.ID(order.CheckoutID), events.StockSubtractionTopic, command).
		WithID(models.NameBasedID("stock-subtraction:" + strconv.FormatInt(order.ID, 10))).
		WithCorrelationID(orderCorrelationID(order.ID)).
		WithReplyTo(events.StockSubtractionReplyTopic)
}

func newCheckoutCompletedEvent(checkout *domain.Checkout, order *domain.Order) *events.Event {
	data := domain.CheckoutCompletedData{
		CheckoutID:  checkout.ID,
		TotalAmount: order.TotalPrice,
	}
	if checkout.PaymentMethodID != nil {
		data.PaymentMethod = *checkout.PaymentMethodID
	}

	return events.NewEvent(models.ID(checkout.ID), events.CheckoutCompletedTopic, data).
		WithID(models.NameBasedID("checkout-completed:" + checkout.ID)).
		WithCorrelationID(orderCorrelationID(order.ID))
}

func newRefundRequestedEvent(order *domain.Order, reason string) *events.Event {
	data := domain.RefundRequestedData{
		OrderID:    order.ID,
		CheckoutID: order.CheckoutID,
		PaymentID:  order.PaymentID,
		Amount:     order.TotalPrice,
		Reason:     reason,
	}

	return events.NewEvent(models.ID(order.CheckoutID), events.OrderRefundRequestedTopic, data).
		WithID(models.NameBasedID("refund:" + strconv.FormatInt(order.ID, 10))).
		WithCorrelationID(orderCorrelationID(order.ID))
}
