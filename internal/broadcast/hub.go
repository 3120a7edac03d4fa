package broadcast

import (
	"sync"

	"live-auction/internal/event"
	"live-auction/utils"
)

// subscriberBuffer is each subscriber's event queue depth. A subscriber
// that falls further behind than this loses events and must resync from
// a fresh snapshot.
const subscriberBuffer = 64

// Subscriber is one connected observer's subscription. Events arrive on
// C until Unsubscribe closes it.
type Subscriber struct {
	ID string
	C  chan event.Event
}

// Hub fans out auction events to all connected subscribers and delivers
// private notices to single subscribers. Delivery is best-effort: a
// send never blocks the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]*Subscriber // key: subscriberID
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]*Subscriber),
	}
}

// Subscribe registers a new observer and returns its subscription.
// Subscribers receive no events published before this call; they
// bootstrap from the registry snapshot instead.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{
		ID: utils.GenerateID(),
		C:  make(chan event.Event, subscriberBuffer),
	}
	h.mu.Lock()
	h.subs[s.ID] = s
	h.mu.Unlock()
	return s
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	s, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	h.mu.Unlock()
	if ok {
		close(s.C)
	}
}

// Count returns the number of current subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish delivers ev to every current subscriber without blocking. A
// full buffer drops the event for that subscriber only.
func (h *Hub) Publish(ev event.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		select {
		case s.C <- ev:
		default:
			utils.Warn("dropping event for slow subscriber", map[string]any{
				"subscriber_id": s.ID,
				"type":          string(ev.EventType()),
			})
		}
	}
}

// Notify delivers ev to a single subscriber only. Used exclusively for
// rejection notices.
func (h *Hub) Notify(subscriberID string, ev event.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.subs[subscriberID]
	if !ok {
		// Subscriber already disconnected; rejection delivery is advisory.
		return
	}
	select {
	case s.C <- ev:
	default:
		utils.Warn("dropping notice for slow subscriber", map[string]any{
			"subscriber_id": subscriberID,
			"type":          string(ev.EventType()),
		})
	}
}
