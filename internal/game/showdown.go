package game

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-rules/internal/evaluator"
)

// Result is one winner of a settled round
type Result struct {
	Player      *Player
	Hand        evaluator.Hand // Zero when Uncontested
	Uncontested bool
}

// Payout is a winner's share of the pot
type Payout struct {
	Result
	Amount int
}

// contenders returns unfolded players starting from the seat after the
// dealer
func (r *Round) contenders() []*Player {
	var live []*Player
	for i := 1; i <= len(r.players); i++ {
		p := r.players[(r.dealer+i)%len(r.players)]
		if !r.IsFolded(p) {
			live = append(live, p)
		}
	}
	return live
}

// Winners returns the players entitled to the pot of a settled round,
// ordered from the seat after the dealer. A lone survivor wins without a
// showdown; otherwise every live hand is evaluated and all equal best
// hands share. It returns ErrNoContenders when every seat has folded.
func (r *Round) Winners() ([]Result, error) {
	if !r.SettleRound() {
		return nil, ErrRoundInProgress
	}

	live := r.contenders()
	switch len(live) {
	case 0:
		return nil, ErrNoContenders
	case 1:
		return []Result{{Player: live[0], Uncontested: true}}, nil
	}

	var best []Result
	for _, p := range live {
		hand, err := evaluator.Best(p.HoleCards, r.community)
		if err != nil {
			panic(fmt.Sprintf("showdown for %s: %v", p.Name, err))
		}
		switch {
		case len(best) == 0 || hand.Beats(best[0].Hand):
			best = []Result{{Player: p, Hand: hand}}
		case hand.Ties(best[0].Hand):
			best = append(best, Result{Player: p, Hand: hand})
		}
	}
	return best, nil
}

// Award pays the pot to the winners of a settled round. A split pot is
// shared equally; odd chips go one each to the winners nearest the
// dealer's left.
func (r *Round) Award() ([]Payout, error) {
	if r.awarded {
		return nil, ErrPotAwarded
	}
	winners, err := r.Winners()
	if err != nil {
		return nil, err
	}
	if len(winners) == 0 {
		return nil, ErrNoContenders
	}

	share, odd := r.pot/len(winners), r.pot%len(winners)
	payouts := make([]Payout, len(winners))
	infos := make([]WinnerInfo, len(winners))
	for i, w := range winners {
		amount := share
		if i < odd {
			amount++
		}
		w.Player.Chips += amount
		payouts[i] = Payout{Result: w, Amount: amount}
		infos[i] = WinnerInfo{
			Name:        w.Player.Name,
			Amount:      amount,
			Hand:        w.Hand,
			HoleCards:   slices.Clone(w.Player.HoleCards),
			Uncontested: w.Uncontested,
		}
	}
	r.awarded = true

	r.logger.Info("Round settled", "hand", r.hand, "pot", r.pot, "winners", len(winners))
	r.bus.Publish(RoundEndEvent{
		Hand:      r.hand,
		Winners:   infos,
		Pot:       r.pot,
		Board:     slices.Clone(r.community),
		timestamp: r.clock.Now(),
	})
	return payouts, nil
}
