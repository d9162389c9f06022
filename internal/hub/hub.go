package hub

import (
	"sync"

	"github.com/rs/zerolog/log"

	"safety-dashboard-go/internal/metrics"
)

// subscriberBuffer is the per-subscriber event queue depth. A dashboard that
// falls this far behind starts losing events rather than stalling the hub.
const subscriberBuffer = 100

// EventType identifies a push-channel event
type EventType string

const (
	EventAllAlerts     EventType = "all_alerts"
	EventNewAlert      EventType = "new_alert"
	EventAlertResolved EventType = "alert_resolved"
	EventAlertsCleared EventType = "alerts_cleared"
)

// Event is a single push-channel frame sent to connected dashboards
type Event struct {
	Event EventType   `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Subscriber is one connected dashboard's event queue
type Subscriber struct {
	ch chan Event
}

// Events returns the channel to consume. It is closed on Unregister.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// send queues an event without blocking. Returns false when dropped.
func (s *Subscriber) send(e Event) bool {
	select {
	case s.ch <- e:
		return true
	default:
		return false
	}
}

// Hub fans store mutations out to all connected subscribers. Delivery is
// best-effort and at-most-once: a slow or disconnected subscriber never
// blocks delivery to the others.
//
// The hub does not order broadcasts against registrations; the alerts
// service serializes those so a new subscriber sees the snapshot first and
// every later mutation exactly once.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

// New creates an empty hub
func New() *Hub {
	return &Hub{
		subs: make(map[*Subscriber]struct{}),
	}
}

// Register creates a subscriber, queues the given store snapshot as its
// first event and adds it to the fan-out set.
func (h *Hub) Register(snapshot interface{}) *Subscriber {
	sub := &Subscriber{ch: make(chan Event, subscriberBuffer)}
	sub.send(Event{Event: EventAllAlerts, Data: snapshot})

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	metrics.Subscribers.Inc()
	log.Debug().Int("subscribers", h.Count()).Msg("Subscriber registered")
	return sub
}

// Unregister removes the subscriber and closes its channel. Safe to call
// more than once, or for a subscriber that was never registered.
func (h *Hub) Unregister(sub *Subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	if ok {
		delete(h.subs, sub)
		close(sub.ch)
	}
	h.mu.Unlock()

	if ok {
		metrics.Subscribers.Dec()
		log.Debug().Int("subscribers", h.Count()).Msg("Subscriber unregistered")
	}
}

// Broadcast sends the event to every registered subscriber, dropping it for
// subscribers whose queue is full.
func (h *Hub) Broadcast(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if !sub.send(e) {
			log.Warn().Str("event", string(e.Event)).Msg("Subscriber queue full, event dropped")
		}
	}
	metrics.EventsBroadcast.WithLabelValues(string(e.Event)).Inc()
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}
