package service

import (
	"context"

	"tableside/notify-svc/internal/domain"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *domain.Notification) error
	Recent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, scope domain.Scope) (int64, error)
	UnreadCount(ctx context.Context, scope domain.Scope) (int, error)
}

// ChannelPublisher pushes a notification onto a realtime topic.
type ChannelPublisher interface {
	Publish(ctx context.Context, topic string, notification domain.Notification) error
}

// ChannelSubscriber attaches to a realtime topic. The returned function
// detaches the subscription and releases the channel resource; after it
// returns no further deliveries happen on the channel.
type ChannelSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan domain.Notification, func(), error)
}

// CuePlayer is the injected audible-cue capability. Implementations may fail
// (runtime denied audio); callers swallow those failures.
type CuePlayer interface {
	Play() error
}

// NoopCuePlayer satisfies consumers that have no audio device.
type NoopCuePlayer struct{}

func (NoopCuePlayer) Play() error { return nil }

type NotifierInterface interface {
	CreateAndPublish(ctx context.Context, notification *domain.Notification) error
	Recent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, scope domain.Scope) (int64, error)
	UnreadCount(ctx context.Context, scope domain.Scope) (int, error)
}

var (
	_ NotifierInterface = (*NotificationService)(nil)
	_ CuePlayer         = NoopCuePlayer{}
)
