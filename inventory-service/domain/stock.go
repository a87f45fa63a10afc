package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopyard/fulfillment/shared/saga"
)

// ProductStock is the on-hand quantity of one product. Products without
// stock tracking accept any quantity and are never decremented.
type ProductStock struct {
	ProductID            int64
	Name                 string
	Quantity             int64
	StockTrackingEnabled bool
	UpdatedAt            time.Time
}

// StockLine is a merged command line: the total quantity requested for a
// product.
type StockLine struct {
	ProductID int64
	Quantity  int64
}

// ProductNotFoundError reports a command line for a product the inventory
// does not know.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError reports a line asking for more than is on hand.
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// CanSubtract reports whether quantity can be taken from the product.
func (p *ProductStock) CanSubtract(quantity int64) error {
	if !p.StockTrackingEnabled || p.Quantity >= quantity {
		return nil
	}
	return &InsufficientStockError{ProductID: p.ProductID, Requested: quantity, Available: p.Quantity}
}

// Subtract takes quantity from a tracked product. Callers check CanSubtract
// first.
func (p *ProductStock) Subtract(quantity int64) {
	if !p.StockTrackingEnabled {
		return
	}
	p.Quantity -= quantity
	p.UpdatedAt = time.Now().UTC()
}

// SubtractAll applies every line or none. The first unsatisfiable line, in
// line order, is returned and stocks are left untouched.
func SubtractAll(stocks map[int64]*ProductStock, lines []StockLine) error {
	for _, line := range lines {
		stock, ok := stocks[line.ProductID]
		if !ok {
			return &ProductNotFoundError{ProductID: line.ProductID}
		}
		if err := stock.CanSubtract(line.Quantity); err != nil {
			return err
		}
	}

	for _, line := range lines {
		stocks[line.ProductID].Subtract(line.Quantity)
	}

	return nil
}

// ReplyBuilder turns the outcome of a subtraction, nil or a business error,
// into the reply recorded for the command.
type ReplyBuilder func(outcome error) *saga.StockReply

// StockRepository owns product quantities.
type StockRepository interface {
	// SubtractStock runs one transaction for commandID: a command seen before
	// returns its recorded reply untouched; otherwise the products are locked,
	// SubtractAll is applied, and the reply built from its outcome is recorded
	// with the command.
	SubtractStock(ctx context.Context, commandID, correlationID string, lines []StockLine, reply ReplyBuilder) (*saga.StockReply, error)
	// FindByProductID returns nil, nil when the product does not exist.
	FindByProductID(ctx context.Context, productID int64) (*ProductStock, error)
}
