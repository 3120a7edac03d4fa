package broadcast

import (
	"testing"

	"live-auction/internal/event"

	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub1 := hub.Subscribe()
	sub2 := hub.Subscribe()
	require.Equal(t, 2, hub.Count())

	ev := event.BidAccepted{ItemID: "1", CurrentBid: 50, HighestBidder: "user-A"}
	hub.Publish(ev)

	require.Equal(t, ev, <-sub1.C)
	require.Equal(t, ev, <-sub2.C)
}

func TestHub_NotifyReachesOnlyTarget(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	target := hub.Subscribe()
	other := hub.Subscribe()

	hub.Notify(target.ID, event.BidRejected{Reason: "bid-too-low"})

	require.Len(t, target.C, 1)
	require.Equal(t, event.BidRejected{Reason: "bid-too-low"}, <-target.C)
	require.Empty(t, other.C)
}

func TestHub_NotifyUnknownSubscriberIsNoop(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	hub.Notify("ghost", event.BidRejected{Reason: "bid-too-low"})
}

// A subscriber that stops draining loses events past its buffer instead
// of blocking the publisher.
func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	slow := hub.Subscribe()

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish(event.AuctionEnded{ItemID: "1"})
	}

	require.Len(t, slow.C, subscriberBuffer)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	sub := hub.Subscribe()
	hub.Unsubscribe(sub.ID)
	require.Equal(t, 0, hub.Count())

	_, open := <-sub.C
	require.False(t, open)

	// A second unsubscribe for the same id is a no-op.
	hub.Unsubscribe(sub.ID)
}

// Late subscribers receive nothing published before they joined; they
// bootstrap from the registry snapshot instead.
func TestHub_NoDeliveryToLateSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	hub.Publish(event.AuctionEnded{ItemID: "1"})

	late := hub.Subscribe()
	require.Empty(t, late.C)
}
