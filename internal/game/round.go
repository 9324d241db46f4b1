package game

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-rules/internal/deck"
	"github.com/lox/holdem-rules/internal/randutil"
)

// Round is the table state for the hand in progress: seating, deck,
// community cards, pot and whose turn it is.
type Round struct {
	players   []*Player
	folded    map[*Player]struct{}
	dealer    int
	turn      int
	stage     Stage
	community []deck.Card
	minCall   int
	pot       int
	hand      int
	awarded   bool

	deck   Dealer
	bus    EventBus
	clock  quartz.Clock
	logger *log.Logger
}

// NewRound seats players in the given order. It panics if fewer than two
// players are seated or if there are too many to deal a full hand from one
// deck.
func NewRound(players []*Player, opts ...RoundOption) *Round {
	if len(players) < 2 {
		panic("at least 2 players required")
	}
	if 2*len(players)+5 > 52 {
		panic(fmt.Sprintf("too many players for one deck: %d", len(players)))
	}

	cfg := &roundConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.dealerIndex < 0 || cfg.dealerIndex >= len(players) {
		panic("dealer position out of range")
	}

	if cfg.dealer == nil {
		rng := cfg.rng
		if rng == nil {
			rng, _ = randutil.Seeded(0)
		}
		cfg.dealer = deck.NewDeck(rng)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}

	return &Round{
		players: slices.Clone(players),
		folded:  make(map[*Player]struct{}),
		dealer:  cfg.dealerIndex,
		turn:    cfg.dealerIndex,
		deck:    cfg.dealer,
		bus:     cfg.bus,
		clock:   cfg.clock,
		logger:  cfg.logger,
	}
}

// StartNewRound rotates the dealer, reshuffles, resets every player and
// deals two hole cards each. The dealer seat acts first. Players with no
// chips are folded straight away.
func (r *Round) StartNewRound() {
	r.deck.Reset()
	clear(r.folded)

	r.dealer = (r.dealer + 1) % len(r.players)
	r.turn = r.dealer
	r.stage = PreFlop
	r.community = nil
	r.minCall = 0
	r.pot = 0
	r.awarded = false
	r.hand++

	names := make([]string, len(r.players))
	for i, p := range r.players {
		p.ResetForNewRound()
		p.HoleCards = r.deal(2)
		names[i] = p.Name

		// Busted players sit the round out
		if p.Chips == 0 {
			p.Fold()
			r.RecordFolded(p)
		}
	}

	dealer := r.players[r.dealer]
	r.logger.Info("New round", "hand", r.hand, "dealer", dealer.Name)
	r.bus.Publish(RoundStartEvent{
		Hand:      r.hand,
		Dealer:    dealer.Name,
		Players:   names,
		timestamp: r.clock.Now(),
	})
}

func (r *Round) deal(n int) []deck.Card {
	cards := r.deck.Deal(n)
	if cards == nil {
		panic(fmt.Sprintf("deck exhausted dealing %d cards", n))
	}
	return cards
}

// AdvanceStage moves to the next stage, deals its community cards and
// resets every player's stage stake. It returns false, changing nothing,
// when the round is already at Showdown. The turn pointer is left alone.
func (r *Round) AdvanceStage() bool {
	next, n, ok := r.stage.Next()
	if !ok {
		return false
	}

	r.stage = next
	if n > 0 {
		r.community = append(r.community, r.deal(n)...)
	}
	r.minCall = 0
	for _, p := range r.players {
		p.ResetForNewStage()
	}

	r.logger.Debug("Stage advanced", "stage", r.stage, "community", len(r.community))
	r.bus.Publish(StageChangeEvent{
		Stage:     r.stage,
		Community: slices.Clone(r.community),
		Pot:       r.pot,
		timestamp: r.clock.Now(),
	})
	return true
}

// RecordFolded adds p to the round's folded set. Recording twice is harmless.
func (r *Round) RecordFolded(p *Player) {
	r.folded[p] = struct{}{}
}

// RecordBet applies the outcome of a Player.Bet to the round. An accepted
// bet is added to the pot and may raise the minimum call; a rejected one
// is announced so the player can be asked again. It reports whether the
// bet was accepted.
func (r *Round) RecordBet(p *Player, w Wager) bool {
	switch w := w.(type) {
	case Accepted:
		r.pot += w.Amount
		r.minCall = max(r.minCall, w.TurnTotal)
		return true
	case Rejected:
		r.reject(p, w.Err())
		return false
	default:
		panic(fmt.Sprintf("unknown wager %T", w))
	}
}

func (r *Round) reject(p *Player, err error) {
	r.logger.Debug("Action rejected", "player", p.Name, "error", err)
	r.bus.Publish(BetRejectedEvent{
		Player:    p.Name,
		Err:       err,
		timestamp: r.clock.Now(),
	})
}

// SettleRound reports whether the round is over: one player left
// unfolded, or Showdown reached.
func (r *Round) SettleRound() bool {
	return len(r.players)-len(r.folded) <= 1 || r.stage == Showdown
}

// SetMinimumCall raises the minimum call to amount as a forced opening
// stake. It never lowers it.
func (r *Round) SetMinimumCall(amount int) {
	r.minCall = max(r.minCall, amount)
}

// NextSeat returns the player whose turn it is and moves the turn to the
// next seat.
func (r *Round) NextSeat() *Player {
	p := r.players[r.turn]
	r.turn = (r.turn + 1) % len(r.players)
	return p
}

// StageComplete reports whether betting for the current stage is done.
// Every player who can still act must have matched the minimum call, and
// when two or more can act, each must have acted since the stage began.
// Folded and all-in players are not waited on.
func (r *Round) StageComplete() bool {
	actors := 0
	for _, p := range r.players {
		if !p.CanAct() {
			continue
		}
		if p.TurnBet < r.minCall {
			return false
		}
		actors++
	}
	if actors <= 1 {
		return true
	}
	for _, p := range r.players {
		if p.CanAct() && !p.Acted {
			return false
		}
	}
	return true
}

// Apply performs action for p against the round. Recoverable errors
// (see IsRecoverable) leave all state untouched. Once the round has
// settled every action is refused with ErrRoundSettled.
func (r *Round) Apply(p *Player, action Action) error {
	if r.SettleRound() {
		return fmt.Errorf("%w: %s cannot %s", ErrRoundSettled, p.Name, action.Kind)
	}
	if p.Folded {
		return fmt.Errorf("%w: %s", ErrPlayerFolded, p.Name)
	}

	var w Wager
	switch action.Kind {
	case Bet:
		w = p.Bet(action.Amount, r.minCall)
	case Call:
		w = p.Call(r.minCall)
	case AllIn:
		w = p.AllIn()
	case Check:
		if err := p.Check(r.minCall); err != nil {
			r.reject(p, err)
			return err
		}
		r.publishAction(p, action, 0)
		return nil
	case Fold:
		p.Fold()
		r.RecordFolded(p)
		r.publishAction(p, action, 0)
		return nil
	default:
		return fmt.Errorf("%w: %s is not a betting action", ErrMalformedInput, action.Kind)
	}

	if !r.RecordBet(p, w) {
		return w.(Rejected).Err()
	}
	r.publishAction(p, action, w.(Accepted).Amount)
	return nil
}

func (r *Round) publishAction(p *Player, action Action, amount int) {
	r.logger.Debug("Player acted", "player", p.Name, "action", action, "amount", amount, "pot", r.pot)
	r.bus.Publish(PlayerActionEvent{
		Player:      p.Name,
		Action:      action,
		Amount:      amount,
		Stage:       r.stage,
		PotAfter:    r.pot,
		MinimumCall: r.minCall,
		timestamp:   r.clock.Now(),
	})
}

// Players returns the seats in order
func (r *Round) Players() []*Player { return slices.Clone(r.players) }

// Stage returns the current stage
func (r *Round) Stage() Stage { return r.stage }

// Community returns a copy of the community cards dealt so far
func (r *Round) Community() []deck.Card { return slices.Clone(r.community) }

// Pot returns the chips committed this round
func (r *Round) Pot() int { return r.pot }

// MinimumCall returns the stake every player must reach this stage
func (r *Round) MinimumCall() int { return r.minCall }

// DealerIndex returns the dealer's seat
func (r *Round) DealerIndex() int { return r.dealer }

// Dealer returns the player in the dealer seat
func (r *Round) Dealer() *Player { return r.players[r.dealer] }

// TurnIndex returns the seat NextSeat will return
func (r *Round) TurnIndex() int { return r.turn }

// HandNumber counts rounds started
func (r *Round) HandNumber() int { return r.hand }

// IsFolded reports whether p is in the round's folded set
func (r *Round) IsFolded(p *Player) bool {
	_, ok := r.folded[p]
	return ok
}
