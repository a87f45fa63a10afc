package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopyard/fulfillment/shared/httpserver"
	"github.com/shopyard/fulfillment/shared/resilience"
)

// BreakerHandlers exposes circuit breaker state to operators
type BreakerHandlers struct {
	breakers *resilience.Registry
}

func NewBreakerHandlers(breakers *resilience.Registry) *BreakerHandlers {
	return &BreakerHandlers{breakers: breakers}
}

// States lists every dependency with its breaker state
func (h *BreakerHandlers) States(w http.ResponseWriter, r *http.Request) {
	httpserver.WriteJSON(w, http.StatusOK, h.breakers.States())
}

func (h *BreakerHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/internal/circuit-breakers", h.States)
}
