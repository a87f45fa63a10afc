package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopyard/fulfillment/shared/apperrors"
)

func TestHTTPBankGateway_CreateTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)

		var body bankTransactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "chk-1", body.CheckoutID)
		assert.True(t, body.Amount.Equal(decimal.RequireFromString("19.99")))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"reference":"ref-1","approval_url":"https://bank.test/approve/ref-1"}`))
	}))
	defer server.Close()

	gateway := NewHTTPBankGateway(server.URL+"/", NewInstrumentedHTTPClient(time.Second))
	tx, err := gateway.CreateTransaction(context.Background(), "chk-1", decimal.RequireFromString("19.99"))

	require.NoError(t, err)
	assert.Equal(t, "ref-1", tx.Reference)
	assert.Equal(t, "https://bank.test/approve/ref-1", tx.ApprovalURL)
}

func TestHTTPBankGateway_CaptureTransaction(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedKind  apperrors.Kind
		expectedError string
		check         func(t *testing.T, approved bool, fee decimal.Decimal, reason string)
	}{
		{
			name:   "approved",
			status: http.StatusOK,
			body:   `{"approved":true,"transaction_id":"tx-1","fee":"0.75"}`,
			check: func(t *testing.T, approved bool, fee decimal.Decimal, reason string) {
				assert.True(t, approved)
				assert.True(t, fee.Equal(decimal.RequireFromString("0.75")))
				assert.Empty(t, reason)
			},
		},
		{
			name:   "declined",
			status: http.StatusOK,
			body:   `{"approved":false,"transaction_id":"tx-2","fee":"0","decline_reason":"card expired"}`,
			check: func(t *testing.T, approved bool, fee decimal.Decimal, reason string) {
				assert.False(t, approved)
				assert.Equal(t, "card expired", reason)
			},
		},
		{
			name:          "unknown token",
			status:        http.StatusNotFound,
			body:          `{"error":"no such transaction"}`,
			expectedKind:  apperrors.KindNotFound,
			expectedError: "unknown transaction",
		},
		{
			name:          "rejected request",
			status:        http.StatusUnprocessableEntity,
			body:          `amount mismatch`,
			expectedKind:  apperrors.KindInvalidArgument,
			expectedError: "amount mismatch",
		},
		{
			name:          "bank failure",
			status:        http.StatusBadGateway,
			body:          `upstream down`,
			expectedError: "bank capture transaction failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/transactions/ref%201/capture", r.URL.EscapedPath())
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			gateway := NewHTTPBankGateway(server.URL, server.Client())
			capture, err := gateway.CaptureTransaction(context.Background(), "ref 1", decimal.NewFromInt(30))

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				if tt.expectedKind != "" {
					assert.True(t, apperrors.IsKind(err, tt.expectedKind))
				}
				return
			}

			require.NoError(t, err)
			tt.check(t, capture.Approved, capture.Fee, capture.DeclineReason)
		})
	}
}
