package game

// Wager is the outcome of a bet: either Accepted or Rejected.
type Wager interface {
	wager()
}

// Accepted is a bet that moved chips from the player's stack. Amount may be
// less than requested when the player went all-in short.
type Accepted struct {
	Amount    int
	TurnTotal int
}

// Rejected is a bet below the minimum call by a player who could afford
// more. No chips moved.
type Rejected struct {
	Player      string
	Requested   int
	MinimumCall int
	TurnBet     int
	Chips       int // Stack at the time of the bet
}

func (Accepted) wager() {}
func (Rejected) wager() {}

// Err returns the rejection as a ShortfallError
func (r Rejected) Err() error {
	return &ShortfallError{
		Player:      r.Player,
		Requested:   r.Requested,
		MinimumCall: r.MinimumCall,
		TurnBet:     r.TurnBet,
		Chips:       r.Chips,
	}
}
