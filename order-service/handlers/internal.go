package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/order-service/application"
	"github.com/shopyard/fulfillment/shared/httpserver"
)

// InternalHandlers serve the order endpoints the payment service calls
type InternalHandlers struct {
	updateCheckoutStatus *application.UpdateCheckoutStatus
	updateOrderStatus    *application.UpdateOrderStatus
	logger               *zap.Logger
}

// NewInternalHandlers creates new internal handlers
func NewInternalHandlers(
	updateCheckoutStatus *application.UpdateCheckoutStatus,
	updateOrderStatus *application.UpdateOrderStatus,
	logger *zap.Logger,
) *InternalHandlers {
	return &InternalHandlers{
		updateCheckoutStatus: updateCheckoutStatus,
		updateOrderStatus:    updateOrderStatus,
		logger:               logger,
	}
}

// UpdateCheckoutStatus records a captured payment and answers the order id
func (h *InternalHandlers) UpdateCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	var cmd application.UpdateCheckoutStatusCommand
	if err := httpserver.DecodeJSON(r, &cmd); err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	response, err := h.updateCheckoutStatus.Execute(r.Context(), &cmd)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, response)
}

// UpdateOrderStatus links a stored payment to its order
func (h *InternalHandlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var cmd application.UpdateOrderStatusCommand
	if err := httpserver.DecodeJSON(r, &cmd); err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	response, err := h.updateOrderStatus.Execute(r.Context(), &cmd)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers internal routes
func (h *InternalHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/internal", func(r chi.Router) {
		r.Put("/checkouts/status", h.UpdateCheckoutStatus)
		r.Put("/orders/status", h.UpdateOrderStatus)
	})
}
