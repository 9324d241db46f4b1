package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-rules/internal/deck"
)

// Player is a seat at the table and its stakes in the current round
type Player struct {
	Name      string
	Chips     int
	HoleCards []deck.Card

	RoundBet int // Chips committed this round
	TurnBet  int // Chips committed this stage
	Folded   bool
	Acted    bool // Has acted since the stage began
}

// NewPlayer creates a player with the given stack
func NewPlayer(name string, chips int) *Player {
	return &Player{Name: name, Chips: chips}
}

// Bet moves up to amount chips into the player's stakes. A bet that leaves
// the turn total below minimumCall is rejected unless it puts the player
// all-in. A bet larger than the stack is capped at the stack.
func (p *Player) Bet(amount, minimumCall int) Wager {
	if amount < 0 || (amount < p.Chips && p.TurnBet+amount < minimumCall) {
		return Rejected{
			Player:      p.Name,
			Requested:   amount,
			MinimumCall: minimumCall,
			TurnBet:     p.TurnBet,
			Chips:       p.Chips,
		}
	}

	actual := min(amount, p.Chips)
	p.Chips -= actual
	p.RoundBet += actual
	p.TurnBet += actual
	p.Acted = true

	return Accepted{Amount: actual, TurnTotal: p.TurnBet}
}

// Call bets exactly what is needed to match minimumCall, or everything if
// the stack is short
func (p *Player) Call(minimumCall int) Wager {
	return p.Bet(max(minimumCall-p.TurnBet, 0), minimumCall)
}

// AllIn bets the entire stack
func (p *Player) AllIn() Wager {
	return p.Bet(p.Chips, 0)
}

// Check passes without betting, which is only legal when nothing is owed
func (p *Player) Check(minimumCall int) error {
	if minimumCall > 0 {
		return &CheckError{Player: p.Name, MinimumCall: minimumCall, TurnBet: p.TurnBet}
	}
	p.Acted = true
	return nil
}

// Fold withdraws the player from the round
func (p *Player) Fold() {
	p.Folded = true
	p.Acted = true
}

// ResetForNewRound clears everything but the name and stack
func (p *Player) ResetForNewRound() {
	p.HoleCards = nil
	p.RoundBet = 0
	p.ResetForNewStage()
	p.Folded = false
}

// ResetForNewStage clears the per-stage stake
func (p *Player) ResetForNewStage() {
	p.TurnBet = 0
	p.Acted = false
}

// CanAct reports whether the player can still make a decision this round
func (p *Player) CanAct() bool {
	return !p.Folded && p.Chips > 0
}

// IsAllIn reports whether the player is still in the round with no chips left
func (p *Player) IsAllIn() bool {
	return !p.Folded && p.Chips == 0
}

// String is the one-line summary shown by the info command
func (p *Player) String() string {
	cards := make([]string, len(p.HoleCards))
	for i, c := range p.HoleCards {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s: %s | Chips: %d | Round Bet: %d | Folded: %t",
		p.Name, strings.Join(cards, " "), p.Chips, p.RoundBet, p.Folded)
}
