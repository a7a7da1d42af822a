package tests

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"tableside/notify-svc/internal/domain"
	"tableside/notify-svc/internal/mocks"
	"tableside/notify-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cueCounter signals on a channel so tests can wait for the fire-and-forget
// playback goroutine instead of sleeping.
type cueCounter struct {
	plays  int32
	played chan struct{}
}

func newCueCounter() *cueCounter {
	return &cueCounter{played: make(chan struct{}, 16)}
}

func (c *cueCounter) Play() error {
	atomic.AddInt32(&c.plays, 1)
	c.played <- struct{}{}
	return nil
}

func (c *cueCounter) waitForPlay(t *testing.T) {
	t.Helper()
	select {
	case <-c.played:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for cue playback")
	}
}

func notificationIDs(notifications []domain.Notification) []string {
	ids := make([]string, 0, len(notifications))
	for _, n := range notifications {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestFeed_AttachBackfillsWithoutCue(t *testing.T) {
	repository := mocks.NewNotificationRepository(t)
	subscriber := mocks.NewChannelSubscriber(t)
	cue := newCueCounter()

	scope := domain.Scope{Kind: domain.ScopeCustomer, ID: 5}
	events := make(chan domain.Notification)

	subscriber.On("Subscribe", context.Background(), scope.Topic()).
		Return((<-chan domain.Notification)(events), func() { close(events) }, nil).Once()
	repository.On("Recent", context.Background(), scope, 3).
		Return([]domain.Notification{{ID: "n2"}, {ID: "n1"}}, nil).Once()

	feed := service.NewFeed(scope, 3, repository, subscriber, cue)
	require.NoError(t, feed.Attach(context.Background()))
	defer feed.Detach()

	assert.Equal(t, []string{"n2", "n1"}, notificationIDs(feed.Snapshot()))
	assert.Equal(t, int32(0), atomic.LoadInt32(&cue.plays))
}

func TestFeed_LiveEventsPrependAndCue(t *testing.T) {
	repository := mocks.NewNotificationRepository(t)
	subscriber := mocks.NewChannelSubscriber(t)
	cue := newCueCounter()

	scope := domain.Scope{Kind: domain.ScopeRestaurant, ID: 10}
	events := make(chan domain.Notification)

	subscriber.On("Subscribe", context.Background(), scope.Topic()).
		Return((<-chan domain.Notification)(events), func() { close(events) }, nil).Once()
	repository.On("Recent", context.Background(), scope, 3).
		Return([]domain.Notification{{ID: "n2"}, {ID: "n1"}}, nil).Once()

	feed := service.NewFeed(scope, 3, repository, subscriber, cue)
	require.NoError(t, feed.Attach(context.Background()))

	events <- domain.Notification{ID: "n3"}
	cue.waitForPlay(t)
	assert.Equal(t, []string{"n3", "n2", "n1"}, notificationIDs(feed.Snapshot()))

	// A redelivered id changes nothing and stays silent.
	events <- domain.Notification{ID: "n2"}

	// The view is bounded; the oldest entry ages out.
	events <- domain.Notification{ID: "n4"}
	cue.waitForPlay(t)

	feed.Detach()

	assert.Equal(t, []string{"n4", "n3", "n2"}, notificationIDs(feed.Snapshot()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&cue.plays))
}

func TestFeed_DetachStopsDelivery(t *testing.T) {
	repository := mocks.NewNotificationRepository(t)
	subscriber := mocks.NewChannelSubscriber(t)

	scope := domain.Scope{Kind: domain.ScopeCustomer, ID: 5}
	events := make(chan domain.Notification)

	subscriber.On("Subscribe", context.Background(), scope.Topic()).
		Return((<-chan domain.Notification)(events), func() { close(events) }, nil).Once()
	repository.On("Recent", context.Background(), scope, 3).
		Return([]domain.Notification{}, nil).Once()

	feed := service.NewFeed(scope, 3, repository, subscriber, nil)
	require.NoError(t, feed.Attach(context.Background()))

	feed.Detach()
	assert.Empty(t, feed.Snapshot())
}

func TestFeed_DetachBeforeAttach(t *testing.T) {
	feed := service.NewFeed(domain.Scope{Kind: domain.ScopeCustomer, ID: 5}, 3, nil, nil, nil)
	feed.Detach()
}
