package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/order-service/application"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/httpserver"
)

// CheckoutHandlers contains the storefront checkout HTTP handlers
type CheckoutHandlers struct {
	createCheckout              *application.CreateCheckout
	getPendingCheckout          *application.GetPendingCheckout
	updateCheckoutPaymentMethod *application.UpdateCheckoutPaymentMethod
	confirmCheckout             *application.ConfirmCheckout
	getOrder                    *application.GetOrder
	logger                      *zap.Logger
}

// NewCheckoutHandlers creates new checkout handlers
func NewCheckoutHandlers(
	createCheckout *application.CreateCheckout,
	getPendingCheckout *application.GetPendingCheckout,
	updateCheckoutPaymentMethod *application.UpdateCheckoutPaymentMethod,
	confirmCheckout *application.ConfirmCheckout,
	getOrder *application.GetOrder,
	logger *zap.Logger,
) *CheckoutHandlers {
	return &CheckoutHandlers{
		createCheckout:              createCheckout,
		getPendingCheckout:          getPendingCheckout,
		updateCheckoutPaymentMethod: updateCheckoutPaymentMethod,
		confirmCheckout:             confirmCheckout,
		getOrder:                    getOrder,
		logger:                      logger,
	}
}

// CreateCheckout handles checkout submission
func (h *CheckoutHandlers) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpserver.CallerID(r)
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
		return
	}

	var cmd application.CreateCheckoutCommand
	if err := httpserver.DecodeJSON(r, &cmd); err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}
	cmd.CreatedBy = caller

	view, err := h.createCheckout.Execute(r.Context(), &cmd)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, view)
}

// GetPendingCheckout returns the caller's pending checkout
func (h *CheckoutHandlers) GetPendingCheckout(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpserver.CallerID(r)
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
		return
	}

	view, err := h.getPendingCheckout.Execute(r.Context(), &application.GetPendingCheckoutQuery{
		CheckoutID: chi.URLParam(r, "id"),
		CallerID:   caller,
	})
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, view)
}

// UpdatePaymentMethod chooses the payment method of a checkout
func (h *CheckoutHandlers) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var cmd application.UpdateCheckoutPaymentMethodCommand
	if err := httpserver.DecodeJSON(r, &cmd); err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}
	cmd.CheckoutID = chi.URLParam(r, "id")

	if err := h.updateCheckoutPaymentMethod.Execute(r.Context(), &cmd); err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConfirmCheckout places the order of a checkout
func (h *CheckoutHandlers) ConfirmCheckout(w http.ResponseWriter, r *http.Request) {
	caller, ok := httpserver.CallerID(r)
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
		return
	}

	response, err := h.confirmCheckout.Execute(r.Context(), &application.ConfirmCheckoutCommand{
		CheckoutID: chi.URLParam(r, "id"),
		CallerID:   caller,
	})
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, response)
}

// GetOrder returns an order by id
func (h *CheckoutHandlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, apperrors.InvalidArgument("invalid order id"))
		return
	}

	view, err := h.getOrder.Execute(r.Context(), orderID)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, view)
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/checkouts", func(r chi.Router) {
		r.Post("/", h.CreateCheckout)
		r.Get("/{id}", h.GetPendingCheckout)
		r.Put("/{id}/payment-method", h.UpdatePaymentMethod)
		r.Post("/{id}/confirm", h.ConfirmCheckout)
	})
	r.Get("/orders/{id}", h.GetOrder)
}
