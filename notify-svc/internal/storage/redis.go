package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"tableside/notify-svc/internal/domain"
)

// RedisChannel is the realtime channel primitive, backed by Redis Pub/Sub.
// Delivery is at-least-once from the subscriber's point of view (a client
// that reconnects re-fetches history), so consumers de-duplicate by id.
type RedisChannel struct {
	Client *redis.Client
}

func NewRedisChannel(client *redis.Client) *RedisChannel {
	return &RedisChannel{Client: client}
}

func (c *RedisChannel) Publish(ctx context.Context, topic string, notification domain.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return c.Client.Publish(ctx, topic, payload).Err()
}

// Subscribe attaches to a topic and decodes messages into notifications.
// The returned function tears the subscription down; the notification
// channel closes once teardown is complete.
func (c *RedisChannel) Subscribe(ctx context.Context, topic string) (<-chan domain.Notification, func(), error) {
	pubsub := c.Client.Subscribe(ctx, topic)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, err
	}

	out := make(chan domain.Notification)
	go func() {
		defer close(out)
		for message := range pubsub.Channel() {
			var notification domain.Notification
			if err := json.Unmarshal([]byte(message.Payload), &notification); err != nil {
				logrus.Warnf("dropping malformed notification on %s: %v", topic, err)
				continue
			}
			out <- notification
		}
	}()

	return out, func() { pubsub.Close() }, nil
}
