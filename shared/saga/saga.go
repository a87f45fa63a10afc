package saga

import (
	"strings"

	"github.com/pkg/errors"
)

// Stock saga failure reasons carried in StockReply.Reason.
const (
	ReasonInvalidCommand    = "INVALID_COMMAND"
	ReasonProductNotFound   = "PRODUCT_NOT_FOUND"
	ReasonInsufficientStock = "INSUFFICIENT_STOCK"
)

// ProductItem is one line of a stock-subtraction command.
type ProductItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// StockCommand asks the inventory participant to subtract stock for an order.
type StockCommand struct {
	OrderID      int64         `json:"order_id"`
	CheckoutID   string        `json:"checkout_id"`
	ProductItems []ProductItem `json:"product_items"`
}

// Validate checks the command shape. Duplicated products are allowed and
// merged by Lines.
func (c StockCommand) Validate() error {
	if len(c.ProductItems) == 0 {
		return errors.New("stock command has no product items")
	}

	for _, item := range c.ProductItems {
		if item.Quantity <= 0 {
			return errors.Errorf("invalid quantity %d for product %d", item.Quantity, item.ProductID)
		}
	}

	return nil
}

// Lines merges duplicated products and returns quantities keyed by product id,
// preserving the first-seen order in the returned id slice.
func (c StockCommand) Lines() ([]int64, map[int64]int64) {
	ids := make([]int64, 0, len(c.ProductItems))
	quantities := make(map[int64]int64, len(c.ProductItems))

	for _, item := range c.ProductItems {
		if _, seen := quantities[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += int64(item.Quantity)
	}

	return ids, quantities
}

// StockReply is the participant's answer to a StockCommand.
type StockReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

func SuccessReply(message string) *StockReply {
	return &StockReply{Success: true, Message: message}
}

func FailureReply(reason string, messages ...string) *StockReply {
	return &StockReply{Success: false, Reason: reason, Message: strings.Join(messages, "; ")}
}
