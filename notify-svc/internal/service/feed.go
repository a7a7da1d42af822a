package service

import (
	"context"
	"sync"

	"tableside/notify-svc/internal/domain"
)

// Feed is one subscriber's live, bounded view of a scope's notifications.
// Attach performs a backward fetch of the most recent N, then live events
// are prepended as they arrive. The channel is at-least-once, so every
// append is guarded by id de-duplication; an id is never shown twice.
type Feed struct {
	scope      domain.Scope
	limit      int
	repo       NotificationRepository
	subscriber ChannelSubscriber
	cue        CuePlayer

	mu   sync.Mutex
	view []domain.Notification
	seen map[string]struct{}

	unsubscribe func()
	done        chan struct{}
}

func NewFeed(scope domain.Scope, limit int, repo NotificationRepository, subscriber ChannelSubscriber, cue CuePlayer) *Feed {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	if cue == nil {
		cue = NoopCuePlayer{}
	}
	return &Feed{
		scope:      scope,
		limit:      limit,
		repo:       repo,
		subscriber: subscriber,
		cue:        cue,
		seen:       make(map[string]struct{}),
		done:       make(chan struct{}),
	}
}

// Attach subscribes to the live channel first and only then backfills, so
// events arriving during the fetch are not lost; de-duplication resolves the
// overlap between the two sources.
func (f *Feed) Attach(ctx context.Context) error {
	events, unsubscribe, err := f.subscriber.Subscribe(ctx, f.scope.Topic())
	if err != nil {
		return err
	}
	f.unsubscribe = unsubscribe

	recent, err := f.repo.Recent(ctx, f.scope, f.limit)
	if err != nil {
		unsubscribe()
		return err
	}

	f.mu.Lock()
	for _, notification := range recent {
		if _, duplicate := f.seen[notification.ID]; duplicate {
			continue
		}
		f.seen[notification.ID] = struct{}{}
		f.view = append(f.view, notification)
	}
	f.mu.Unlock()

	go f.consume(events)
	return nil
}

func (f *Feed) consume(events <-chan domain.Notification) {
	defer close(f.done)
	for notification := range events {
		if !f.append(notification) {
			continue
		}
		// Only transitions actually observed live produce the cue; replayed
		// history never does. Playback failures stay silent.
		go func() {
			_ = f.cue.Play()
		}()
	}
}

// append prepends a live notification, reports whether it was new, and
// re-bounds the view. Old entries age out of the view only, never the store.
func (f *Feed) append(notification domain.Notification) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, duplicate := f.seen[notification.ID]; duplicate {
		return false
	}
	f.seen[notification.ID] = struct{}{}

	f.view = append([]domain.Notification{notification}, f.view...)
	if len(f.view) > f.limit {
		f.view = f.view[:f.limit]
	}
	return true
}

// Snapshot returns the current view, newest first.
func (f *Feed) Snapshot() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := make([]domain.Notification, len(f.view))
	copy(snapshot, f.view)
	return snapshot
}

// Detach stops all further delivery and releases the channel resource.
func (f *Feed) Detach() {
	if f.unsubscribe == nil {
		return
	}
	f.unsubscribe()
	<-f.done
}
