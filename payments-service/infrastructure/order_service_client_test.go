package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/payments-service/domain"
	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/models"
	"github.com/shopyard/fulfillment/shared/resilience"
)

func newTestOrderClient(t *testing.T, handler http.HandlerFunc, settings resilience.Settings, timeout time.Duration) (*OrderServiceClient, *resilience.Breaker, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	registry, err := resilience.NewRegistry(settings, zap.NewNop())
	require.NoError(t, err)
	breaker := registry.Breaker("order-service")

	client := NewOrderServiceClient(server.URL, server.Client(), resilience.NewClient(breaker, timeout))
	return client, breaker, &calls
}

func testCapture() *domain.CapturedPayment {
	return &domain.CapturedPayment{
		CheckoutID:           "chk-1",
		Amount:               decimal.NewFromInt(80),
		PaymentFee:           decimal.RequireFromString("1.20"),
		GatewayTransactionID: "tx-1",
		PaymentMethod:        models.PaymentMethodBanking,
		PaymentStatus:        models.PaymentStatusCompleted,
	}
}

func TestOrderServiceClient_UpdateCheckoutStatus(t *testing.T) {
	client, _, calls := newTestOrderClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/internal/checkouts/status", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "chk-1", body["checkout_id"])
		assert.Equal(t, "COMPLETED", body["payment_status"])
		assert.Equal(t, "BANKING", body["payment_method"])
		assert.Equal(t, "tx-1", body["gateway_transaction_id"])

		_, _ = w.Write([]byte(`{"order_id":42}`))
	}, resilience.DefaultSettings(), time.Second)

	orderID, err := client.UpdateCheckoutStatus(context.Background(), testCapture())

	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestOrderServiceClient_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedKind  apperrors.Kind
		expectedError string
	}{
		{
			name:   "acknowledged",
			status: http.StatusOK,
			body:   `{"order_id":42,"payment_id":7,"order_status":"PAID","payment_status":"COMPLETED"}`,
		},
		{
			name:          "unknown order",
			status:        http.StatusNotFound,
			body:          `{"error":"Order 42 not found"}`,
			expectedKind:  apperrors.KindNotFound,
			expectedError: "Order 42 not found",
		},
		{
			name:          "server error",
			status:        http.StatusInternalServerError,
			body:          `{"error":"Internal server error"}`,
			expectedError: "order service responded 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newTestOrderClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/internal/orders/status", r.URL.Path)

				var update domain.OrderStatusUpdate
				require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
				assert.Equal(t, int64(7), update.PaymentID)
				assert.Equal(t, int64(42), update.OrderID)
				assert.Nil(t, update.OrderStatus)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, resilience.DefaultSettings(), time.Second)

			ack, err := client.UpdateOrderStatus(context.Background(), &domain.OrderStatusUpdate{
				PaymentID:     7,
				OrderID:       42,
				PaymentStatus: "COMPLETED",
			})

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				if tt.expectedKind != "" {
					assert.True(t, apperrors.IsKind(err, tt.expectedKind))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "PAID", ack.OrderStatus)
			assert.Equal(t, int64(7), ack.PaymentID)
		})
	}
}

func TestOrderServiceClient_ForcedOpenBreakerSkipsNetwork(t *testing.T) {
	client, breaker, calls := newTestOrderClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"order_id":1}`))
	}, resilience.DefaultSettings(), time.Second)

	breaker.ForceOpen()

	_, err := client.UpdateCheckoutStatus(context.Background(), testCapture())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCircuitOpen))
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))

	ack, err := client.UpdateOrderStatus(context.Background(), &domain.OrderStatusUpdate{
		PaymentID:     7,
		OrderID:       1,
		PaymentStatus: "COMPLETED",
	})
	require.Error(t, err)
	assert.Nil(t, ack)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCircuitOpen))
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))

	breaker.Reset()

	orderID, err := client.UpdateCheckoutStatus(context.Background(), testCapture())
	require.NoError(t, err)
	assert.Equal(t, int64(1), orderID)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestOrderServiceClient_TripsAfterFailures(t *testing.T) {
	settings := resilience.Settings{
		FailureRateThreshold: 0.5,
		MinimumRequests:      2,
		Window:               time.Minute,
		OpenWait:             time.Minute,
		HalfOpenMaxCalls:     1,
	}
	client, breaker, calls := newTestOrderClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, settings, time.Second)

	for i := 0; i < 2; i++ {
		_, err := client.UpdateCheckoutStatus(context.Background(), testCapture())
		require.Error(t, err)
		assert.False(t, apperrors.IsKind(err, apperrors.KindCircuitOpen))
	}
	assert.Equal(t, resilience.StateOpen, breaker.State())

	_, err := client.UpdateCheckoutStatus(context.Background(), testCapture())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCircuitOpen))
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestOrderServiceClient_NotFoundDoesNotTrip(t *testing.T) {
	settings := resilience.Settings{
		FailureRateThreshold: 0.5,
		MinimumRequests:      2,
		Window:               time.Minute,
		OpenWait:             time.Minute,
		HalfOpenMaxCalls:     1,
	}
	client, breaker, _ := newTestOrderClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, settings, time.Second)

	for i := 0; i < 3; i++ {
		_, err := client.UpdateOrderStatus(context.Background(), &domain.OrderStatusUpdate{OrderID: 1, PaymentStatus: "COMPLETED"})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	}
	assert.Equal(t, resilience.StateClosed, breaker.State())
}
