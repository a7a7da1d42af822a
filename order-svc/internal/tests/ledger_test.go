package tests

import (
	"context"
	"database/sql"
	"testing"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/mocks"
	"tableside/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLedgerService_Create(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	tokens := mocks.NewTokenIssuer(t)
	publisher := mocks.NewEventPublisher(t)

	svc := service.NewLedgerService(repository, tokens, publisher)

	ctx := context.Background()

	tests := []struct {
		name          string
		order         *domain.Order
		prepareMocks  func()
		expectedError error
		expectedTotal float64
	}{
		{
			name: "success_dine_in",
			order: &domain.Order{
				CustomerID: 1, RestaurantID: 10, OrderType: domain.OrderTypeDineIn,
				TotalAmount:     999999, // client total is ignored
				ReservationDate: "2026-09-01", ReservationTime: "19:00", PartySize: 2,
				Items: []domain.OrderItem{
					{ItemID: "d-1", Name: "Pho", Quantity: 2, UnitPrice: 45000},
					{ItemID: "d-2", Name: "Spring rolls", Quantity: 1, UnitPrice: 30000},
				},
			},
			prepareMocks: func() {
				tokens.On("Issue").Return("tok-a").Once()
				repository.On("InsertOrder", ctx, mock.Anything).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderCreated && e.Status == domain.StatusPaid
				})).Return(nil).Once()
			},
			expectedError: nil,
			expectedTotal: 120000,
		},
		{
			name: "error_empty_cart",
			order: &domain.Order{
				CustomerID: 1, RestaurantID: 10, OrderType: domain.OrderTypeTakeaway,
			},
			prepareMocks:  func() {},
			expectedError: service.ErrValidation,
		},
		{
			name: "error_takeaway_with_reservation",
			order: &domain.Order{
				CustomerID: 1, RestaurantID: 10, OrderType: domain.OrderTypeTakeaway,
				ReservationDate: "2026-09-01",
				Items:           []domain.OrderItem{{ItemID: "d-1", Quantity: 1, UnitPrice: 45000}},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrValidation,
		},
		{
			name: "error_unknown_order_type",
			order: &domain.Order{
				CustomerID: 1, RestaurantID: 10, OrderType: "delivery",
				Items: []domain.OrderItem{{ItemID: "d-1", Quantity: 1, UnitPrice: 45000}},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrValidation,
		},
		{
			name: "error_non_positive_quantity",
			order: &domain.Order{
				CustomerID: 1, RestaurantID: 10, OrderType: domain.OrderTypeTakeaway,
				Items: []domain.OrderItem{{ItemID: "d-1", Quantity: 0, UnitPrice: 45000}},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrValidation,
		},
		{
			name: "success_duplicate_token_retried",
			order: &domain.Order{
				CustomerID: 2, RestaurantID: 10, OrderType: domain.OrderTypeTakeaway,
				Items: []domain.OrderItem{{ItemID: "d-3", Name: "Banh mi", Quantity: 1, UnitPrice: 35000}},
			},
			prepareMocks: func() {
				tokens.On("Issue").Return("tok-b").Once()
				repository.On("InsertOrder", ctx, mock.Anything).Return(domain.ErrDuplicateToken).Once()
				tokens.On("Issue").Return("tok-c").Once()
				repository.On("InsertOrder", ctx, mock.Anything).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedError: nil,
			expectedTotal: 35000,
		},
		{
			name: "error_token_retries_exhausted",
			order: &domain.Order{
				CustomerID: 3, RestaurantID: 10, OrderType: domain.OrderTypeTakeaway,
				Items: []domain.OrderItem{{ItemID: "d-3", Quantity: 1, UnitPrice: 35000}},
			},
			prepareMocks: func() {
				tokens.On("Issue").Return("tok-d").Times(3)
				repository.On("InsertOrder", ctx, mock.Anything).Return(domain.ErrDuplicateToken).Times(3)
			},
			expectedError: service.ErrConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Create(ctx, testCase.order)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, domain.StatusPaid, testCase.order.Status)
				assert.Equal(t, testCase.expectedTotal, testCase.order.TotalAmount)
				assert.NotEmpty(t, testCase.order.QRToken)
			}
		})
	}
}

func TestLedgerService_Transition(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)

	svc := service.NewLedgerService(repository, service.UUIDTokenIssuer{}, publisher)

	ctx := context.Background()

	orderWith := func(id int, status domain.OrderStatus) *domain.Order {
		return &domain.Order{ID: id, CustomerID: 1, RestaurantID: 10, Status: status, TotalAmount: 120000}
	}

	tests := []struct {
		name           string
		orderID        int
		requested      domain.OrderStatus
		actor          domain.ActorRole
		prepareMocks   func()
		expectedError  error
		expectedStatus domain.OrderStatus
	}{
		{
			name:      "success_paid_to_preparing",
			orderID:   1,
			requested: domain.StatusPreparing,
			actor:     domain.RoleRestaurantStaff,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 1).Return(orderWith(1, domain.StatusPaid), nil).Once()
				repository.On("CompareAndSetStatus", ctx, 1, domain.StatusPaid, domain.StatusPreparing).Return(true, nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventStatusChanged && e.Status == domain.StatusPreparing
				})).Return(nil).Once()
			},
			expectedStatus: domain.StatusPreparing,
		},
		{
			name:      "noop_same_status_emits_nothing",
			orderID:   2,
			requested: domain.StatusPreparing,
			actor:     domain.RoleRestaurantStaff,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 2).Return(orderWith(2, domain.StatusPreparing), nil).Once()
			},
			expectedStatus: domain.StatusPreparing,
		},
		{
			name:      "error_skipping_a_stage",
			orderID:   3,
			requested: domain.StatusServed,
			actor:     domain.RoleRestaurantStaff,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 3).Return(orderWith(3, domain.StatusPaid), nil).Once()
			},
			expectedError: service.ErrConflict,
		},
		{
			name:      "error_leaving_terminal_state",
			orderID:   4,
			requested: domain.StatusPreparing,
			actor:     domain.RoleAdmin,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 4).Return(orderWith(4, domain.StatusCompleted), nil).Once()
			},
			expectedError: service.ErrConflict,
		},
		{
			name:      "noop_cancelling_cancelled",
			orderID:   5,
			requested: domain.StatusCancelled,
			actor:     domain.RoleCustomer,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 5).Return(orderWith(5, domain.StatusCancelled), nil).Once()
			},
			expectedStatus: domain.StatusCancelled,
		},
		{
			name:      "error_customer_requests_preparing",
			orderID:   6,
			requested: domain.StatusPreparing,
			actor:     domain.RoleCustomer,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 6).Return(orderWith(6, domain.StatusPaid), nil).Once()
			},
			expectedError: service.ErrPermission,
		},
		{
			name:      "success_customer_cancels_paid",
			orderID:   7,
			requested: domain.StatusCancelled,
			actor:     domain.RoleCustomer,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 7).Return(orderWith(7, domain.StatusPaid), nil).Once()
				repository.On("CompareAndSetStatus", ctx, 7, domain.StatusPaid, domain.StatusCancelled).Return(true, nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedStatus: domain.StatusCancelled,
		},
		{
			name:      "error_unknown_order",
			orderID:   8,
			requested: domain.StatusPreparing,
			actor:     domain.RoleRestaurantStaff,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 8).Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrNotFound,
		},
		{
			name:      "lost_race_resolves_as_noop",
			orderID:   9,
			requested: domain.StatusPreparing,
			actor:     domain.RoleRestaurantStaff,
			prepareMocks: func() {
				repository.On("GetOrder", ctx, 9).Return(orderWith(9, domain.StatusPaid), nil).Once()
				repository.On("CompareAndSetStatus", ctx, 9, domain.StatusPaid, domain.StatusPreparing).Return(false, nil).Once()
				repository.On("GetOrder", ctx, 9).Return(orderWith(9, domain.StatusPreparing), nil).Once()
			},
			expectedStatus: domain.StatusPreparing,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			order, err := svc.Transition(ctx, testCase.orderID, testCase.requested, testCase.actor)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedStatus, order.Status)
		})
	}
}

func TestLedgerService_Get(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	svc := service.NewLedgerService(repository, service.UUIDTokenIssuer{}, nil)

	ctx := context.Background()

	expected := &domain.Order{ID: 42, Status: domain.StatusReady}
	repository.On("GetOrder", ctx, 42).Return(expected, nil).Once()

	order, err := svc.Get(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, expected, order)

	repository.On("GetOrder", ctx, 43).Return(nil, sql.ErrNoRows).Once()

	_, err = svc.Get(ctx, 43)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestLedgerService_ListByRestaurant(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	svc := service.NewLedgerService(repository, service.UUIDTokenIssuer{}, nil)

	ctx := context.Background()
	filter := domain.OrderFilter{OrderType: domain.OrderTypeDineIn, Status: domain.StatusPaid}

	expected := []domain.Order{
		{ID: 1, RestaurantID: 10, Status: domain.StatusPaid},
		{ID: 2, RestaurantID: 10, Status: domain.StatusPaid},
	}
	repository.On("ListByRestaurant", ctx, 10, filter).Return(expected, nil).Once()

	orders, err := svc.ListByRestaurant(ctx, 10, filter)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, expected, orders)
}
