package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shopyard/fulfillment/inventory-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
)

// ProductStockView represents the stock of a product
type ProductStockView struct {
	ProductID            int64  `json:"product_id"`
	Name                 string `json:"name"`
	Quantity             int64  `json:"quantity"`
	StockTrackingEnabled bool   `json:"stock_tracking_enabled"`
}

// GetProductStock use case
type GetProductStock struct {
	stockRepository domain.StockRepository
}

// NewGetProductStock creates a new GetProductStock use case
func NewGetProductStock(stockRepository domain.StockRepository) *GetProductStock {
	return &GetProductStock{stockRepository: stockRepository}
}

func (uc *GetProductStock) Execute(ctx context.Context, productID int64) (*ProductStockView, error) {
	stock, err := uc.stockRepository.FindByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product stock")
	}

	if stock == nil {
		return nil, apperrors.NotFound("Product %d not found", productID)
	}

	return &ProductStockView{
		ProductID:            stock.ProductID,
		Name:                 stock.Name,
		Quantity:             stock.Quantity,
		StockTrackingEnabled: stock.StockTrackingEnabled,
	}, nil
}
