package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "tableside/order-svc/internal/api/http"
	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/mocks"
	"tableside/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(ledger *mocks.LedgerServiceInterface, tokens *mocks.TokenServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(ledger, tokens, service.NewScanSessionManager())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_createOrder(t *testing.T) {
	ledger := mocks.NewLedgerServiceInterface(t)
	tokens := mocks.NewTokenServiceInterface(t)
	router := setupTestRouter(ledger, tokens)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"customer_id":1,"restaurant_id":10,"order_type":"takeaway","items":[{"item_id":"d-1","quantity":1,"unit_price":45000}]}`,
			prepareMocks: func() {
				ledger.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "validation_failure",
			payload: `{"customer_id":1,"restaurant_id":10,"order_type":"takeaway","items":[]}`,
			prepareMocks: func() {
				ledger.On("Create", mock.Anything, mock.Anything).Return(service.ErrValidation).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "broker_outage",
			payload: `{"customer_id":1,"restaurant_id":10,"order_type":"takeaway","items":[{"item_id":"d-1","quantity":1,"unit_price":45000}]}`,
			prepareMocks: func() {
				ledger.On("Create", mock.Anything, mock.Anything).Return(service.ErrTransient).Once()
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_transitionOrder(t *testing.T) {
	ledger := mocks.NewLedgerServiceInterface(t)
	tokens := mocks.NewTokenServiceInterface(t)
	router := setupTestRouter(ledger, tokens)

	tests := []struct {
		name         string
		payload      string
		header       string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"status":"preparing","actor_role":"restaurant_staff"}`,
			prepareMocks: func() {
				ledger.On("Transition", mock.Anything, 7, domain.StatusPreparing, domain.RoleRestaurantStaff).
					Return(&domain.Order{ID: 7, Status: domain.StatusPreparing}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "header_role_wins_over_body",
			payload: `{"status":"cancelled","actor_role":"admin"}`,
			header:  "customer",
			prepareMocks: func() {
				ledger.On("Transition", mock.Anything, 7, domain.StatusCancelled, domain.RoleCustomer).
					Return(&domain.Order{ID: 7, Status: domain.StatusCancelled}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "conflict",
			payload: `{"status":"served","actor_role":"restaurant_staff"}`,
			prepareMocks: func() {
				ledger.On("Transition", mock.Anything, 7, domain.StatusServed, domain.RoleRestaurantStaff).
					Return(nil, service.ErrConflict).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "forbidden",
			payload: `{"status":"preparing","actor_role":"customer"}`,
			prepareMocks: func() {
				ledger.On("Transition", mock.Anything, 7, domain.StatusPreparing, domain.RoleCustomer).
					Return(nil, service.ErrPermission).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "not_found",
			payload: `{"status":"preparing","actor_role":"restaurant_staff"}`,
			prepareMocks: func() {
				ledger.On("Transition", mock.Anything, 7, domain.StatusPreparing, domain.RoleRestaurantStaff).
					Return(nil, service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid_json",
			payload:      `bad`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/orders/7/status", bytes.NewBufferString(testCase.payload))
			if testCase.header != "" {
				req.Header.Set("X-Actor-Role", testCase.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getOrder(t *testing.T) {
	ledger := mocks.NewLedgerServiceInterface(t)
	tokens := mocks.NewTokenServiceInterface(t)
	router := setupTestRouter(ledger, tokens)

	ledger.On("Get", mock.Anything, 7).
		Return(&domain.Order{ID: 7, Status: domain.StatusReady}, nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var order domain.Order
	json.NewDecoder(recorder.Body).Decode(&order)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, domain.StatusReady, order.Status)
}

func TestHandler_getOrderQRCode(t *testing.T) {
	ledger := mocks.NewLedgerServiceInterface(t)
	tokens := mocks.NewTokenServiceInterface(t)
	router := setupTestRouter(ledger, tokens)

	tokens.On("QRCodePNG", mock.Anything, 7).Return([]byte("png-bytes"), nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/7/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", recorder.Body.String())
}

func TestHandler_listRestaurantOrders(t *testing.T) {
	ledger := mocks.NewLedgerServiceInterface(t)
	tokens := mocks.NewTokenServiceInterface(t)
	router := setupTestRouter(ledger, tokens)

	expectedFilter := domain.OrderFilter{OrderType: domain.OrderTypeDineIn, Status: domain.StatusPaid}
	ledger.On("ListByRestaurant", mock.Anything, 10, expectedFilter).
		Return([]domain.Order{{ID: 1}, {ID: 2}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/10/orders?type=dine_in&status=paid", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var orders []domain.Order
	json.NewDecoder(recorder.Body).Decode(&orders)
	assert.Len(t, orders, 2)
}

func TestHandler_resolveScan(t *testing.T) {
	ledger := mocks.NewLedgerServiceInterface(t)
	tokens := mocks.NewTokenServiceInterface(t)
	router := setupTestRouter(ledger, tokens)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"value":"abc123"}`,
			prepareMocks: func() {
				tokens.On("Resolve", mock.Anything, "abc123").
					Return(&domain.Order{ID: 7, QRToken: "abc123"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "unknown_token",
			payload: `{"value":"stale"}`,
			prepareMocks: func() {
				tokens.On("Resolve", mock.Anything, "stale").
					Return(nil, service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid_json",
			payload:      `bad`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/scan", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_scanSessions(t *testing.T) {
	ledger := mocks.NewLedgerServiceInterface(t)
	tokens := mocks.NewTokenServiceInterface(t)
	router := setupTestRouter(ledger, tokens)

	req := httptest.NewRequest("POST", "/api/scan/sessions", bytes.NewBufferString(`{"client_id":"tablet-1"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	var body map[string]string
	json.NewDecoder(recorder.Body).Decode(&body)
	assert.Equal(t, "tablet-1", body["client_id"])
	assert.NotEmpty(t, body["session_id"])

	req = httptest.NewRequest("POST", "/api/scan/sessions", bytes.NewBufferString(`{}`))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	req = httptest.NewRequest("DELETE", "/api/scan/sessions/tablet-1", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
