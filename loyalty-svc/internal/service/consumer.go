package service

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"tableside/loyalty-svc/internal/domain"
)

// Consumer refreshes a customer's summary as soon as one of their orders
// completes, so dashboards read fresh numbers without waiting for the lazy
// recompute path.
type Consumer struct {
	Reader     *kafka.Reader
	Aggregator AggregatorInterface
}

func NewConsumer(reader *kafka.Reader, aggregator AggregatorInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Aggregator: aggregator,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	logrus.Info("Starting Loyalty Service consumer...")
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
	if event.Type != domain.EventStatusChanged || event.Status != domain.StatusCompleted {
		return
	}

	if _, err := c.Aggregator.Refresh(ctx, event.CustomerID); err != nil {
		logrus.Errorf("Error refreshing loyalty summary for customer %d: %v", event.CustomerID, err)
		return
	}
	logrus.Infof("Refreshed loyalty summary for customer %d after order %d completed",
		event.CustomerID, event.OrderID)
}
