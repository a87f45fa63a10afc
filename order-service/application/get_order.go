package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

// GetOrder use case
type GetOrder struct {
	orderRepository domain.OrderRepository
}

// NewGetOrder creates a new GetOrder use case
func NewGetOrder(orderRepository domain.OrderRepository) *GetOrder {
	return &GetOrder{orderRepository: orderRepository}
}

func (uc *GetOrder) Execute(ctx context.Context, orderID int64) (*OrderView, error) {
	order, err := uc.orderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if order == nil {
		return nil, apperrors.NotFound("Order %d not found", orderID)
	}

	return newOrderView(order), nil
}
