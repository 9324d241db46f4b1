// Package game implements the betting round engine for Texas Hold'em.
//
// A Round owns the seating order, the deck, the community cards and the
// pot for one table. Each hand begins with StartNewRound, which rotates the
// dealer, reshuffles and deals two hole cards to every seat. Players then
// act in seat order starting at the dealer; AdvanceStage moves through the
// Flop, Turn and River to Showdown, dealing community cards and resetting
// the per-stage stakes.
//
// # Basic Usage
//
// Drive a hand step by step:
//
//	alice, bob := game.NewPlayer("Alice", 1000), game.NewPlayer("Bob", 1000)
//	r := game.NewRound([]*game.Player{alice, bob}, game.WithRNG(randutil.New(42)))
//	r.StartNewRound()
//	r.SetMinimumCall(20)
//	p := r.NextSeat()
//	if err := r.Apply(p, game.Action{Kind: game.Call}); err != nil {
//	    // recoverable: the player may try again
//	}
//
// Or let a Runner prompt an ActionSource until the hand settles:
//
//	payouts, err := game.NewRunner(r, source).PlayHand(ctx)
//
// # Money
//
// Chips move only through Player.Bet (and Call and AllIn, which are built
// on it) followed by Round.RecordBet, and back out through Round.Award.
// The pot always equals the sum of every player's round bet.
package game
