package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/inventory-service/application"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/httpserver"
)

// StockHandlers contains read-only stock HTTP handlers
type StockHandlers struct {
	getProductStock *application.GetProductStock
	logger          *zap.Logger
}

// NewStockHandlers creates new stock handlers
func NewStockHandlers(getProductStock *application.GetProductStock, logger *zap.Logger) *StockHandlers {
	return &StockHandlers{
		getProductStock: getProductStock,
		logger:          logger,
	}
}

// GetProductStock handles stock lookups
func (h *StockHandlers) GetProductStock(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, apperrors.InvalidArgument("invalid product id"))
		return
	}

	view, err := h.getProductStock.Execute(r.Context(), productID)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, view)
}

// RegisterRoutes registers stock routes
func (h *StockHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/products/{id}/stock", h.GetProductStock)
}
