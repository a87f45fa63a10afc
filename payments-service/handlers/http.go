package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/payments-service/application"
	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/httpserver"
)

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	initPayment    *application.InitPayment
	capturePayment *application.CapturePayment
	getPayment     *application.GetPayment
	logger         *zap.Logger
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(
	initPayment *application.InitPayment,
	capturePayment *application.CapturePayment,
	getPayment *application.GetPayment,
	logger *zap.Logger,
) *PaymentHandlers {
	return &PaymentHandlers{
		initPayment:    initPayment,
		capturePayment: capturePayment,
		getPayment:     getPayment,
		logger:         logger,
	}
}

// InitPayment handles payment init requests
func (h *PaymentHandlers) InitPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.InitPaymentRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	response, err := h.initPayment.Execute(r.Context(), &req)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, response)
}

// CapturePayment handles payment capture requests. While the order service
// is degraded the request fails with 503.
func (h *PaymentHandlers) CapturePayment(w http.ResponseWriter, r *http.Request) {
	var req domain.CapturePaymentRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	response, err := h.capturePayment.Execute(r.Context(), &req)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindCircuitOpen) {
			h.logger.Warn("capture rejected, order service unavailable",
				zap.String("checkout_id", req.CheckoutID),
				zap.Error(err),
			)
		}
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, response)
}

// GetPayment handles payment retrieval requests
func (h *PaymentHandlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpserver.WriteError(w, r, h.logger, apperrors.InvalidArgument("invalid payment id"))
		return
	}

	response, err := h.getPayment.Execute(r.Context(), &application.GetPaymentQuery{PaymentID: paymentID})
	if err != nil {
		httpserver.WriteError(w, r, h.logger, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/init", h.InitPayment)
		r.Post("/capture", h.CapturePayment)
		r.Get("/{id}", h.GetPayment)
	})
}
