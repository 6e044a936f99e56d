package broadcast

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(buffer int) *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), buffer)
}

func TestHub_Publish(t *testing.T) {
	t.Run("Only subscribers of the game receive the event", func(t *testing.T) {
		// Given: one subscriber on game a and one on game b
		hub := newTestHub(4)
		subA, cancelA := hub.Subscribe("a")
		defer cancelA()
		subB, cancelB := hub.Subscribe("b")
		defer cancelB()

		// When: an event for game a is published
		hub.Publish(Event{Type: EventMove, GameID: "a"})

		// Then: only the subscriber of game a gets it
		require.Len(t, subA.Events(), 1)
		event := <-subA.Events()
		assert.Equal(t, EventMove, event.Type)
		assert.Empty(t, subB.Events())
	})

	t.Run("Full buffer drops instead of blocking", func(t *testing.T) {
		// Given: a subscriber with a buffer of one
		hub := newTestHub(1)
		sub, cancel := hub.Subscribe("a")
		defer cancel()

		// When: two events are published
		hub.Publish(Event{Type: EventMove, GameID: "a"})
		hub.Publish(Event{Type: EventReset, GameID: "a"})

		// Then: the first is kept and the second dropped
		require.Len(t, sub.Events(), 1)
		assert.Equal(t, EventMove, (<-sub.Events()).Type)
	})
}

func TestHub_Unsubscribe(t *testing.T) {
	// Given: a subscriber
	hub := newTestHub(1)
	sub, cancel := hub.Subscribe("a")
	require.Equal(t, 1, hub.Subscribers("a"))

	// When: it unsubscribes twice
	cancel()
	cancel()

	// Then: the channel is closed and the hub forgets it
	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.Zero(t, hub.Subscribers("a"))

	// And: publishing afterwards is harmless
	hub.Publish(Event{Type: EventMove, GameID: "a"})
}

func TestHub_Close(t *testing.T) {
	// Given: a hub with a subscriber
	hub := newTestHub(1)
	sub, cancel := hub.Subscribe("a")

	// When: the hub is closed
	hub.Close()

	// Then: existing and new subscriptions are closed
	_, ok := <-sub.Events()
	assert.False(t, ok)

	late, lateCancel := hub.Subscribe("a")
	_, ok = <-late.Events()
	assert.False(t, ok)

	cancel()
	lateCancel()
}
