package game

import (
	"sync"
	"time"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart EventType = "round_start"
	EventTypeAction     EventType = "action"
	EventTypeRoundEnd   EventType = "round_end"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is any event emitted while a round runs. Events are values
// read by collaborators (CLI, simulator); the engine itself never does
// I/O with them.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a round has been initialized.
type RoundStartEvent struct {
	SessionID  string
	Variant    string
	BootAmount int
	Pot        int
	Seats      int
	timestamp  time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent builds the event from a freshly initialized state.
func NewRoundStartEvent(s *State) RoundStartEvent {
	return RoundStartEvent{
		SessionID:  s.Session.ID,
		Variant:    string(s.Session.Variant),
		BootAmount: s.Session.BootAmount,
		Pot:        s.Session.Pot,
		Seats:      len(s.Session.Players),
		timestamp:  time.Now(),
	}
}

// ActionEvent is published after each applied action.
type ActionEvent struct {
	SessionID  string
	PlayerID   string
	PlayerName string
	Action     ActionType
	Amount     int
	PotAfter   int
	timestamp  time.Time
}

func (e ActionEvent) EventType() EventType { return EventTypeAction }
func (e ActionEvent) Timestamp() time.Time { return e.timestamp }

// NewActionEvent builds the event from the state an action produced.
func NewActionEvent(s *State) ActionEvent {
	e := ActionEvent{
		SessionID: s.Session.ID,
		PotAfter:  s.Session.Pot,
		timestamp: time.Now(),
	}
	if s.LastAction != nil {
		e.PlayerID = s.LastAction.PlayerID
		e.Action = s.LastAction.Type
		e.Amount = s.LastAction.Amount
		if p, _ := s.PlayerByID(s.LastAction.PlayerID); p != nil {
			e.PlayerName = p.Name
		}
	}
	return e
}

// RoundEndEvent is published when the round reaches a terminal state.
type RoundEndEvent struct {
	SessionID string
	Winners   []string
	Pot       int
	Showdown  bool // false when won by last seat standing
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent builds the event from a terminal state.
func NewRoundEndEvent(s *State) RoundEndEvent {
	return RoundEndEvent{
		SessionID: s.Session.ID,
		Winners:   append([]string(nil), s.Winners...),
		Pot:       s.Session.Pot,
		Showdown:  len(s.ShowdownPlayers) == 2,
		timestamp: time.Now(),
	}
}

// EventBus fans events out to subscribers synchronously. Handlers run
// on the publisher's goroutine, matching the engine's single-writer
// model per session.
type EventBus struct {
	mu       sync.RWMutex
	handlers []func(GameEvent)
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a handler for all events.
func (b *EventBus) Subscribe(handler func(GameEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers the event to every subscriber in order.
func (b *EventBus) Publish(event GameEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.handlers {
		h(event)
	}
}
