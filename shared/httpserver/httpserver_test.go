package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/shared/apperrors"
)

func TestNewRouter_HealthAndMetrics(t *testing.T) {
	router := NewRouter(nil, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "not found keeps message",
			err:            errors.Wrap(apperrors.NotFound("Checkout abc not found"), "failed"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Checkout abc not found",
		},
		{
			name:           "forbidden",
			err:            apperrors.Forbidden("You don't have permission to access this page"),
			expectedStatus: http.StatusForbidden,
			expectedBody:   "permission",
		},
		{
			name:           "circuit open",
			err:            apperrors.CircuitOpen("circuit breaker for order-service is OPEN"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "order-service",
		},
		{
			name:           "internal error is hidden",
			err:            errors.New("pq: password authentication failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), zap.NewNop(), tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"mug"}`))
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, "mug", body.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	err := DecodeJSON(req, &body)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestCallerID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := CallerID(req)
	assert.False(t, ok)

	req.Header.Set(CallerHeader, "customer-1")
	caller, ok := CallerID(req)
	assert.True(t, ok)
	assert.Equal(t, "customer-1", caller)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	done := make(chan error, 1)
	go func() { done <- Serve(ctx, server, zap.NewNop()) }()

	cancel()
	assert.NoError(t, <-done)
}
