package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"tableside/notify-svc/internal/domain"
)

// Consumer turns ledger events into notifications. Each event produces
// exactly one row per target scope; duplicate deliveries from the broker are
// tolerated because subscribers de-duplicate by notification id.
type Consumer struct {
	Reader   *kafka.Reader
	Notifier NotifierInterface
}

func NewConsumer(reader *kafka.Reader, notifier NotifierInterface) *Consumer {
	return &Consumer{
		Reader:   reader,
		Notifier: notifier,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	logrus.Info("Starting Notification Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.Errorf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logrus.Errorf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	for _, notification := range notificationsFor(event) {
		notification := notification
		if err := c.Notifier.CreateAndPublish(ctx, &notification); err != nil {
			logrus.Errorf("Error creating notification for order %d: %v", event.OrderID, err)
		}
	}
}

// notificationsFor expands one ledger event into its per-scope
// notifications. Creation announces to the restaurant; status changes go to
// the customer, with cancellations also flagged to the restaurant and
// completions followed by a rating prompt.
func notificationsFor(event domain.OrderEvent) []domain.Notification {
	switch event.Type {
	case domain.EventOrderCreated:
		return []domain.Notification{{
			TargetScope: domain.ScopeRestaurant,
			TargetID:    event.RestaurantID,
			Kind:        domain.KindOrderCreated,
			OrderID:     event.OrderID,
			Title:       "New order",
			Message:     fmt.Sprintf("Order #%d placed (%.0f)", event.OrderID, event.TotalAmount),
		}}

	case domain.EventStatusChanged:
		notifications := []domain.Notification{{
			TargetScope: domain.ScopeCustomer,
			TargetID:    event.CustomerID,
			Kind:        domain.KindStatusChanged,
			OrderID:     event.OrderID,
			Title:       "Order update",
			Message:     fmt.Sprintf("Order #%d is now %s", event.OrderID, event.Status),
		}}

		if event.Status == "cancelled" {
			notifications = append(notifications, domain.Notification{
				TargetScope: domain.ScopeRestaurant,
				TargetID:    event.RestaurantID,
				Kind:        domain.KindStatusChanged,
				OrderID:     event.OrderID,
				Title:       "Order cancelled",
				Message:     fmt.Sprintf("Order #%d was cancelled", event.OrderID),
			})
		}

		if event.Status == "completed" {
			notifications = append(notifications, domain.Notification{
				TargetScope: domain.ScopeCustomer,
				TargetID:    event.CustomerID,
				Kind:        domain.KindRatingPrompt,
				OrderID:     event.OrderID,
				Title:       "How was it?",
				Message:     fmt.Sprintf("Rate your order #%d", event.OrderID),
			})
		}
		return notifications

	default:
		return nil
	}
}
