package tests

import (
	"context"
	"errors"
	"testing"

	"tableside/notify-svc/internal/domain"
	"tableside/notify-svc/internal/mocks"
	"tableside/notify-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchNotification(scope domain.ScopeKind, targetID int, kind domain.NotificationKind) interface{} {
	return mock.MatchedBy(func(n *domain.Notification) bool {
		return n.TargetScope == scope && n.TargetID == targetID && n.Kind == kind
	})
}

func TestConsumer_ProcessEvent(t *testing.T) {
	notifier := mocks.NewNotifierInterface(t)
	consumer := service.NewConsumer(nil, notifier)

	ctx := context.Background()

	tests := []struct {
		name         string
		event        domain.OrderEvent
		prepareMocks func()
	}{
		{
			name: "order_created_notifies_restaurant",
			event: domain.OrderEvent{
				Type: domain.EventOrderCreated, OrderID: 1, CustomerID: 5, RestaurantID: 10,
				Status: "paid", TotalAmount: 120000,
			},
			prepareMocks: func() {
				notifier.On("CreateAndPublish", ctx,
					matchNotification(domain.ScopeRestaurant, 10, domain.KindOrderCreated)).
					Return(nil).Once()
			},
		},
		{
			name: "status_change_notifies_customer",
			event: domain.OrderEvent{
				Type: domain.EventStatusChanged, OrderID: 2, CustomerID: 5, RestaurantID: 10,
				Status: "preparing",
			},
			prepareMocks: func() {
				notifier.On("CreateAndPublish", ctx,
					matchNotification(domain.ScopeCustomer, 5, domain.KindStatusChanged)).
					Return(nil).Once()
			},
		},
		{
			name: "cancellation_also_notifies_restaurant",
			event: domain.OrderEvent{
				Type: domain.EventStatusChanged, OrderID: 3, CustomerID: 5, RestaurantID: 10,
				Status: "cancelled",
			},
			prepareMocks: func() {
				notifier.On("CreateAndPublish", ctx,
					matchNotification(domain.ScopeCustomer, 5, domain.KindStatusChanged)).
					Return(nil).Once()
				notifier.On("CreateAndPublish", ctx,
					matchNotification(domain.ScopeRestaurant, 10, domain.KindStatusChanged)).
					Return(nil).Once()
			},
		},
		{
			name: "completion_adds_rating_prompt",
			event: domain.OrderEvent{
				Type: domain.EventStatusChanged, OrderID: 4, CustomerID: 5, RestaurantID: 10,
				Status: "completed",
			},
			prepareMocks: func() {
				notifier.On("CreateAndPublish", ctx,
					matchNotification(domain.ScopeCustomer, 5, domain.KindStatusChanged)).
					Return(nil).Once()
				notifier.On("CreateAndPublish", ctx,
					matchNotification(domain.ScopeCustomer, 5, domain.KindRatingPrompt)).
					Return(nil).Once()
			},
		},
		{
			name: "unknown_event_type_is_ignored",
			event: domain.OrderEvent{
				Type: "order_reindexed", OrderID: 5,
			},
			prepareMocks: func() {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			consumer.ProcessEvent(ctx, testCase.event)
		})
	}
}

func TestConsumer_ProcessEvent_StoreFailureDoesNotStopFanout(t *testing.T) {
	notifier := mocks.NewNotifierInterface(t)
	consumer := service.NewConsumer(nil, notifier)

	ctx := context.Background()

	// First target fails, second is still attempted.
	notifier.On("CreateAndPublish", ctx,
		matchNotification(domain.ScopeCustomer, 5, domain.KindStatusChanged)).
		Return(errors.New("insert failed")).Once()
	notifier.On("CreateAndPublish", ctx,
		matchNotification(domain.ScopeRestaurant, 10, domain.KindStatusChanged)).
		Return(nil).Once()

	consumer.ProcessEvent(ctx, domain.OrderEvent{
		Type: domain.EventStatusChanged, OrderID: 9, CustomerID: 5, RestaurantID: 10,
		Status: "cancelled",
	})

	assert.True(t, notifier.AssertNumberOfCalls(t, "CreateAndPublish", 2))
}
