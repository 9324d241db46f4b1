package game

import (
	"slices"

	"github.com/lox/holdem-rules/internal/deck"
)

// PlayerView is a read-only copy of one seat
type PlayerView struct {
	Name      string
	Chips     int
	RoundBet  int
	TurnBet   int
	Folded    bool
	AllIn     bool
	Dealer    bool
	Viewer    bool
	HoleCards []deck.Card // Only set for the viewer, or for live players at Showdown
}

// Snapshot is a read-only copy of the round as one player may see it
type Snapshot struct {
	Hand        int
	Stage       Stage
	Community   []deck.Card
	Pot         int
	MinimumCall int
	Players     []PlayerView
}

// Viewer returns the viewing player's seat, if any
func (s Snapshot) Viewer() (PlayerView, bool) {
	for _, v := range s.Players {
		if v.Viewer {
			return v, true
		}
	}
	return PlayerView{}, false
}

// Snapshot copies the round state. Hole cards are included for viewer
// only, and for every unfolded player once Showdown is reached. A nil
// viewer sees no hole cards before Showdown.
func (r *Round) Snapshot(viewer *Player) Snapshot {
	s := Snapshot{
		Hand:        r.hand,
		Stage:       r.stage,
		Community:   slices.Clone(r.community),
		Pot:         r.pot,
		MinimumCall: r.minCall,
		Players:     make([]PlayerView, len(r.players)),
	}
	for i, p := range r.players {
		v := r.view(p)
		v.Dealer = i == r.dealer
		v.Viewer = p == viewer
		if v.Viewer || (r.stage == Showdown && !p.Folded) {
			v.HoleCards = slices.Clone(p.HoleCards)
		}
		s.Players[i] = v
	}
	return s
}

// View returns p's own view of their seat, hole cards included
func (r *Round) View(p *Player) PlayerView {
	v := r.view(p)
	v.Viewer = true
	v.Dealer = r.players[r.dealer] == p
	v.HoleCards = slices.Clone(p.HoleCards)
	return v
}

func (r *Round) view(p *Player) PlayerView {
	return PlayerView{
		Name:     p.Name,
		Chips:    p.Chips,
		RoundBet: p.RoundBet,
		TurnBet:  p.TurnBet,
		Folded:   p.Folded,
		AllIn:    p.IsAllIn(),
	}
}
