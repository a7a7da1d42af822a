package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tableside/notify-svc/internal/domain"
)

// DefaultFetchLimit bounds the backward fetch on subscriber attach.
const DefaultFetchLimit = 50

type NotificationService struct {
	repo      NotificationRepository
	publisher ChannelPublisher
}

func NewNotificationService(repo NotificationRepository, publisher ChannelPublisher) *NotificationService {
	return &NotificationService{repo: repo, publisher: publisher}
}

// CreateAndPublish persists exactly one row per triggering event and then
// fans it out on the scope's realtime topic. A failed publish is contained:
// subscribers re-fetch on attach, so the durable row is the safety net.
func (s *NotificationService) CreateAndPublish(ctx context.Context, notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	if err := s.repo.Insert(ctx, notification); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, notification.Scope().Topic(), *notification); err != nil {
			logrus.Warnf("failed to publish notification %s to %s: %v",
				notification.ID, notification.Scope().Topic(), err)
		}
	}
	return nil
}

func (s *NotificationService) Recent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	return s.repo.Recent(ctx, scope, limit)
}

// MarkRead is idempotent; a second call on the same id is a no-op and read
// state never reverts.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.repo.MarkRead(ctx, notificationID)
}

// MarkAllRead applies to notifications unread as of call time; anything
// arriving afterwards stays unread.
func (s *NotificationService) MarkAllRead(ctx context.Context, scope domain.Scope) (int64, error) {
	return s.repo.MarkAllRead(ctx, scope)
}

// UnreadCount is always derived from the store, never separately tracked.
func (s *NotificationService) UnreadCount(ctx context.Context, scope domain.Scope) (int, error) {
	return s.repo.UnreadCount(ctx, scope)
}
