package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterQueuesSnapshotFirst(t *testing.T) {
	h := New()

	sub := h.Register([]string{"a", "b"})
	defer h.Unregister(sub)

	select {
	case event := <-sub.Events():
		assert.Equal(t, EventAllAlerts, event.Event)
		assert.Equal(t, []string{"a", "b"}, event.Data)
	default:
		t.Fatal("snapshot event not queued at registration")
	}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	h := New()

	first := h.Register(nil)
	second := h.Register(nil)
	defer h.Unregister(first)
	defer h.Unregister(second)

	<-first.Events()
	<-second.Events()

	h.Broadcast(Event{Event: EventNewAlert, Data: "payload"})

	for _, sub := range []*Subscriber{first, second} {
		select {
		case event := <-sub.Events():
			assert.Equal(t, EventNewAlert, event.Event)
		default:
			t.Fatal("subscriber missed broadcast")
		}
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	h := New()

	sub := h.Register(nil)
	h.Unregister(sub)

	<-sub.Events() // drain snapshot
	_, ok := <-sub.Events()
	assert.False(t, ok, "channel should be closed after unregister")
	assert.Equal(t, 0, h.Count())
}

func TestUnregisterIsIdempotent(t *testing.T) {
	h := New()

	sub := h.Register(nil)
	h.Unregister(sub)
	h.Unregister(sub) // must not panic or double-close
	assert.Equal(t, 0, h.Count())
}

func TestBroadcastAfterUnregisterReachesRemaining(t *testing.T) {
	h := New()

	gone := h.Register(nil)
	stays := h.Register(nil)
	defer h.Unregister(stays)

	<-stays.Events()
	h.Unregister(gone)

	h.Broadcast(Event{Event: EventAlertResolved})

	select {
	case event := <-stays.Events():
		assert.Equal(t, EventAlertResolved, event.Event)
	default:
		t.Fatal("remaining subscriber missed broadcast")
	}
}

func TestSlowSubscriberDropsNotBlocks(t *testing.T) {
	h := New()

	sub := h.Register(nil)
	defer h.Unregister(sub)

	// Fill the queue well past its buffer; Broadcast must never block.
	for i := 0; i < subscriberBuffer*2; i++ {
		h.Broadcast(Event{Event: EventNewAlert, Data: i})
	}

	received := 0
	for {
		select {
		case <-sub.Events():
			received++
			continue
		default:
		}
		break
	}

	require.Equal(t, subscriberBuffer, received, "queue holds at most its buffer, extras dropped")
}
