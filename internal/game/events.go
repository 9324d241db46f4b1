package game

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-rules/internal/deck"
	"github.com/lox/holdem-rules/internal/evaluator"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeRoundEnd     EventType = "round_end"
	EventTypeStageChange  EventType = "stage_change"
	EventTypePlayerAction EventType = "player_action"
	EventTypeBetRejected  EventType = "bet_rejected"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a round. Events carry
// copies of round state so subscribers cannot mutate the engine.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published after hole cards are dealt
type RoundStartEvent struct {
	Hand      int
	Dealer    string
	Players   []string
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// StageChangeEvent is published when the round moves to a new stage
type StageChangeEvent struct {
	Stage     Stage
	Community []deck.Card
	Pot       int
	timestamp time.Time
}

func (e StageChangeEvent) EventType() EventType { return EventTypeStageChange }
func (e StageChangeEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published when a player's action is accepted
type PlayerActionEvent struct {
	Player      string
	Action      Action
	Amount      int // Chips actually moved
	Stage       Stage
	PotAfter    int
	MinimumCall int
	timestamp   time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// BetRejectedEvent is published when an action is refused and the player
// will be asked again
type BetRejectedEvent struct {
	Player    string
	Err       error
	timestamp time.Time
}

func (e BetRejectedEvent) EventType() EventType { return EventTypeBetRejected }
func (e BetRejectedEvent) Timestamp() time.Time { return e.timestamp }

// WinnerInfo describes one share of an awarded pot
type WinnerInfo struct {
	Name        string
	Amount      int
	Hand        evaluator.Hand // Zero when Uncontested
	HoleCards   []deck.Card
	Uncontested bool
}

// RoundEndEvent is published when the pot is awarded
type RoundEndEvent struct {
	Hand      int
	Winners   []WinnerInfo
	Pot       int
	Board     []deck.Card
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if i := slices.Index(bus.subscribers, subscriber); i >= 0 {
		bus.subscribers = slices.Delete(bus.subscribers, i, i+1)
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventSubscriberFunc adapts a function to EventSubscriber. Function values
// are not comparable, so these cannot be unsubscribed.
type EventSubscriberFunc func(GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// LogSubscriber writes every event to a structured logger
type LogSubscriber struct {
	logger *log.Logger
}

// NewLogSubscriber returns a subscriber that logs events at debug level,
// with round results at info
func NewLogSubscriber(logger *log.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger.WithPrefix("events")}
}

func (s *LogSubscriber) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case RoundStartEvent:
		s.logger.Debug("Round started", "hand", e.Hand, "dealer", e.Dealer, "players", len(e.Players))
	case StageChangeEvent:
		s.logger.Debug("Stage changed", "stage", e.Stage, "community", len(e.Community), "pot", e.Pot)
	case PlayerActionEvent:
		s.logger.Debug("Player acted", "player", e.Player, "action", e.Action, "amount", e.Amount, "pot", e.PotAfter)
	case BetRejectedEvent:
		s.logger.Debug("Action rejected", "player", e.Player, "error", e.Err)
	case RoundEndEvent:
		for _, w := range e.Winners {
			s.logger.Info("Pot awarded", "hand", e.Hand, "winner", w.Name, "amount", w.Amount, "uncontested", w.Uncontested)
		}
	}
}
