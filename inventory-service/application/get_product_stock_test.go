package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/inventory-service/domain"
	"github.com/shopyard/fulfillment/inventory-service/mocks"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

func TestGetProductStock_Execute(t *testing.T) {
	stock := mocks.NewMockStockRepository(t)
	stock.EXPECT().FindByProductID(mock.Anything, int64(1)).
		Return(&domain.ProductStock{ProductID: 1, Name: "Desk lamp", Quantity: 12, StockTrackingEnabled: true}, nil).Once()
	stock.EXPECT().FindByProductID(mock.Anything, int64(2)).Return(nil, nil).Once()

	uc := NewGetProductStock(stock)

	view, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &ProductStockView{ProductID: 1, Name: "Desk lamp", Quantity: 12, StockTrackingEnabled: true}, view)

	_, err = uc.Execute(context.Background(), 2)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
