package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/order-service/application"
	"github.com/shopyard/fulfillment/order-service/domain"
	"github.com/shopyard/fulfillment/order-service/mocks"
	"github.com/shopyard/fulfillment/shared/httpserver"
	"github.com/shopyard/fulfillment/shared/models"
)

type testServer struct {
	router    *chi.Mux
	checkouts *mocks.MockCheckoutRepository
	orders    *mocks.MockOrderRepository
	publisher *mocks.MockPublisher
}

func newTestServer(t *testing.T) *testServer {
	checkouts := mocks.NewMockCheckoutRepository(t)
	orders := mocks.NewMockOrderRepository(t)
	publisher := mocks.NewMockPublisher(t)
	logger := zap.NewNop()

	router := chi.NewRouter()
	NewCheckoutHandlers(
		application.NewCreateCheckout(checkouts),
		application.NewGetPendingCheckout(checkouts),
		application.NewUpdateCheckoutPaymentMethod(checkouts),
		application.NewConfirmCheckout(checkouts, orders, publisher),
		application.NewGetOrder(orders),
		logger,
	).RegisterRoutes(router)
	NewInternalHandlers(
		application.NewUpdateCheckoutStatus(checkouts, orders, publisher),
		application.NewUpdateOrderStatus(orders, publisher),
		logger,
	).RegisterRoutes(router)

	return &testServer{router: router, checkouts: checkouts, orders: orders, publisher: publisher}
}

func (s *testServer) do(method, path, caller, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if caller != "" {
		req.Header.Set(httpserver.CallerHeader, caller)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutHandlers_CreateCheckout(t *testing.T) {
	s := newTestServer(t)
	s.checkouts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Checkout) bool {
		return c.CreatedBy == "customer-1" && len(c.Items) == 1
	})).Return(nil).Once()

	rec := s.do(http.MethodPost, "/checkouts", "customer-1",
		`{"email":"buyer@example.com","checkout_items":[{"product_id":10,"quantity":2,"product_price":"15.00"}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var view application.CheckoutView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "PENDING", view.State)
	require.Len(t, view.Items, 1)
	assert.Equal(t, view.ID, view.Items[0].CheckoutID)
	assert.True(t, view.Items[0].ProductPrice.Equal(decimal.NewFromInt(15)))
}

func TestCheckoutHandlers_CreateCheckoutWithoutCaller(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/checkouts", "", `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutHandlers_GetPendingCheckout(t *testing.T) {
	checkout := &domain.Checkout{ID: "c-1", State: domain.CheckoutStatePending, CreatedBy: "customer-1"}

	tests := []struct {
		name           string
		caller         string
		setupMocks     func(*testServer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "owner",
			caller: "customer-1",
			setupMocks: func(s *testServer) {
				s.checkouts.EXPECT().FindByIDAndState(mock.Anything, "c-1", domain.CheckoutStatePending).Return(checkout, nil).Once()
				s.checkouts.EXPECT().FindItemsByCheckoutID(mock.Anything, "c-1").Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"checkout_items":null`,
		},
		{
			name:   "someone else",
			caller: "customer-2",
			setupMocks: func(s *testServer) {
				s.checkouts.EXPECT().FindByIDAndState(mock.Anything, "c-1", domain.CheckoutStatePending).Return(checkout, nil).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "You don't have permission to access this page",
		},
		{
			name:   "missing",
			caller: "customer-1",
			setupMocks: func(s *testServer) {
				s.checkouts.EXPECT().FindByIDAndState(mock.Anything, "c-1", domain.CheckoutStatePending).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Checkout c-1 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setupMocks(s)

			rec := s.do(http.MethodGet, "/checkouts/c-1", tt.caller, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestCheckoutHandlers_UpdatePaymentMethod(t *testing.T) {
	s := newTestServer(t)
	s.checkouts.EXPECT().FindByID(mock.Anything, "c-1").Return(&domain.Checkout{ID: "c-1", State: domain.CheckoutStatePending}, nil).Twice()
	s.checkouts.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	rec := s.do(http.MethodPut, "/checkouts/c-1/payment-method", "customer-1", `{"payment_method_id":"COD"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPut, "/checkouts/c-1/payment-method", "customer-1", `{"payment_method_id":"CHEQUE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown payment method")
}

func TestInternalHandlers_UpdateCheckoutStatus(t *testing.T) {
	s := newTestServer(t)
	method := models.PaymentMethodCOD
	s.checkouts.EXPECT().FindByID(mock.Anything, "c-1").
		Return(&domain.Checkout{ID: "c-1", State: domain.CheckoutStatePending, PaymentMethodID: &method}, nil).Once()
	s.checkouts.EXPECT().FindItemsByCheckoutID(mock.Anything, "c-1").
		Return([]domain.CheckoutItem{{ID: 1, CheckoutID: "c-1", ProductID: 10, Quantity: 1}}, nil).Once()
	s.orders.EXPECT().PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Order{ID: 31, CheckoutID: "c-1", Status: domain.OrderStatusPending}, true, nil).Once()
	s.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	rec := s.do(http.MethodPut, "/internal/checkouts/status", "",
		`{"checkout_id":"c-1","amount":"10","payment_fee":"0","payment_method":"COD","payment_status":"COMPLETED"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"order_id":31}`, rec.Body.String())
}

func TestInternalHandlers_UpdateOrderStatusNotFound(t *testing.T) {
	s := newTestServer(t)
	s.orders.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, nil).Once()

	rec := s.do(http.MethodPut, "/internal/orders/status", "", `{"payment_id":1,"order_id":99,"payment_status":"COMPLETED"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInternalHandlers_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPut, "/internal/orders/status", "", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandlers_GetOrder(t *testing.T) {
	s := newTestServer(t)
	s.orders.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(&domain.Order{ID: 5, CheckoutID: "c-1", Status: domain.OrderStatusAccepted}, nil).Once()

	rec := s.do(http.MethodGet, "/orders/5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_status":"ACCEPTED"`)

	rec = s.do(http.MethodGet, "/orders/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

