package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lox/holdem-rules/internal/deck"
)

// stackedDealer deals a fixed sequence of cards, restarting on Reset.
// Hole cards go two per seat in seat order, then flop, turn and river.
type stackedDealer struct {
	cards []deck.Card
	next  int
}

func newStackedDealer(notation ...string) *stackedDealer {
	return &stackedDealer{cards: deck.MustParseCards(strings.Join(notation, ""))}
}

func (d *stackedDealer) Deal(n int) []deck.Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := append([]deck.Card(nil), d.cards[d.next:d.next+n]...)
	d.next += n
	return cards
}

func (d *stackedDealer) Reset() { d.next = 0 }

var errScriptExhausted = errors.New("script exhausted")

// scriptedSource replays per-player command lines and records rejections
type scriptedSource struct {
	t        *testing.T
	scripts  map[string][]string
	prompts  []string
	rejected []error
	views    []Snapshot
}

func newScriptedSource(t *testing.T, scripts map[string][]string) *scriptedSource {
	return &scriptedSource{t: t, scripts: scripts}
}

func (s *scriptedSource) NextAction(_ context.Context, view Snapshot, p *Player) (Action, error) {
	s.prompts = append(s.prompts, p.Name)
	s.views = append(s.views, view)

	lines := s.scripts[p.Name]
	if len(lines) == 0 {
		return Action{}, fmt.Errorf("%w for %s", errScriptExhausted, p.Name)
	}
	s.scripts[p.Name] = lines[1:]

	action, err := ParseCommand(lines[0])
	if err != nil {
		s.t.Fatalf("bad script line %q: %v", lines[0], err)
	}
	return action, nil
}

func (s *scriptedSource) Rejected(_ *Player, err error) {
	s.rejected = append(s.rejected, err)
}

// recordingBus captures every published event
type recordingBus struct {
	EventBus
	events []GameEvent
}

func newRecordingBus() *recordingBus {
	b := &recordingBus{EventBus: NewEventBus()}
	b.Subscribe(EventSubscriberFunc(func(e GameEvent) {
		b.events = append(b.events, e)
	}))
	return b
}

func (b *recordingBus) types() []EventType {
	types := make([]EventType, len(b.events))
	for i, e := range b.events {
		types[i] = e.EventType()
	}
	return types
}

func newPlayers(chips int, names ...string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, chips)
	}
	return players
}

func totalChips(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.Chips + p.RoundBet
	}
	return total
}
