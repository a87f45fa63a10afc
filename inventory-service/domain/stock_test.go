package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stocks() map[int64]*ProductStock {
	return map[int64]*ProductStock{
		1: {ProductID: 1, Quantity: 5, StockTrackingEnabled: true},
		2: {ProductID: 2, Quantity: 1, StockTrackingEnabled: true},
		3: {ProductID: 3, Quantity: 0, StockTrackingEnabled: false},
	}
}

func TestSubtractAll(t *testing.T) {
	tests := []struct {
		name          string
		lines         []StockLine
		expected      map[int64]int64
		expectedError error
	}{
		{
			name:     "every line satisfied",
			lines:    []StockLine{{ProductID: 1, Quantity: 5}, {ProductID: 2, Quantity: 1}},
			expected: map[int64]int64{1: 0, 2: 0, 3: 0},
		},
		{
			name:     "untracked product is accepted without decrement",
			lines:    []StockLine{{ProductID: 3, Quantity: 100}, {ProductID: 1, Quantity: 2}},
			expected: map[int64]int64{1: 3, 2: 1, 3: 0},
		},
		{
			name:          "one insufficient line rejects the whole command",
			lines:         []StockLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 2}},
			expected:      map[int64]int64{1: 5, 2: 1, 3: 0},
			expectedError: &InsufficientStockError{ProductID: 2, Requested: 2, Available: 1},
		},
		{
			name:          "unknown product rejects the whole command",
			lines:         []StockLine{{ProductID: 1, Quantity: 1}, {ProductID: 9, Quantity: 1}},
			expected:      map[int64]int64{1: 5, 2: 1, 3: 0},
			expectedError: &ProductNotFoundError{ProductID: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := stocks()

			err := SubtractAll(current, tt.lines)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
			}
			for id, quantity := range tt.expected {
				assert.Equal(t, quantity, current[id].Quantity, "product %d", id)
			}
		})
	}
}

func TestStockErrorMessages(t *testing.T) {
	assert.Equal(t, "product 9 not found", (&ProductNotFoundError{ProductID: 9}).Error())
	assert.Equal(t, "insufficient stock for product 2: requested 3, available 1",
		(&InsufficientStockError{ProductID: 2, Requested: 3, Available: 1}).Error())
}
