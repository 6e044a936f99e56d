// Package broadcast fans game state changes out to live subscribers.
package broadcast

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/orderchaos-backend/internal/entity"
)

type EventType string

const (
	EventCreated  EventType = "created"
	EventMove     EventType = "move"
	EventRoundEnd EventType = "round_end"
	EventGameOver EventType = "game_over"
	EventReset    EventType = "reset"
	EventDeleted  EventType = "deleted"
)

// Event carries a snapshot of the game after the change.
type Event struct {
	Type   EventType
	GameID string
	Game   *entity.Game
}

type Subscription struct {
	id     uint64
	gameID string
	events chan Event
}

// Events is closed when the subscription ends.
func (that *Subscription) Events() <-chan Event {
	return that.events
}

// Hub delivers events to subscribers of the same game. Publishing never
// blocks: a subscriber with a full buffer misses the event.
type Hub struct {
	logger *slog.Logger
	buffer int

	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]*Subscription
	closed bool
}

func NewHub(logger *slog.Logger, buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}

	return &Hub{
		logger: logger.With("component", "broadcast"),
		buffer: buffer,
		subs:   make(map[string]map[uint64]*Subscription),
	}
}

// Subscribe returns a subscription to gameID and the function that ends it.
func (that *Hub) Subscribe(gameID string) (*Subscription, func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	sub := &Subscription{
		id:     that.nextID,
		gameID: gameID,
		events: make(chan Event, that.buffer),
	}
	that.nextID++

	if that.closed {
		close(sub.events)
		return sub, func() {}
	}

	if that.subs[gameID] == nil {
		that.subs[gameID] = make(map[uint64]*Subscription)
	}
	that.subs[gameID][sub.id] = sub

	var once sync.Once

	return sub, func() {
		once.Do(func() { that.unsubscribe(sub) })
	}
}

func (that *Hub) unsubscribe(sub *Subscription) {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameSubs, ok := that.subs[sub.gameID]
	if !ok {
		return
	}

	if _, ok = gameSubs[sub.id]; !ok {
		return
	}

	delete(gameSubs, sub.id)
	close(sub.events)

	if len(gameSubs) == 0 {
		delete(that.subs, sub.gameID)
	}
}

func (that *Hub) Publish(event Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, sub := range that.subs[event.GameID] {
		select {
		case sub.events <- event:
		default:
			that.logger.Warn("subscriber buffer full, event dropped", "gameID", event.GameID, "event", event.Type)
		}
	}
}

// Subscribers returns the number of live subscriptions to gameID.
func (that *Hub) Subscribers(gameID string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.subs[gameID])
}

// Close ends every subscription. Later subscriptions are closed immediately.
func (that *Hub) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}
	that.closed = true

	for gameID, gameSubs := range that.subs {
		for _, sub := range gameSubs {
			close(sub.events)
		}
		delete(that.subs, gameID)
	}
}
