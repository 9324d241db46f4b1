package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction is returned for a well-formed action the player may
	// not take right now. The player can be prompted again.
	ErrInvalidAction = errors.New("invalid action")

	// ErrIllegalCheck is returned when a player checks while a call is owed
	ErrIllegalCheck = errors.New("cannot check")

	// ErrMalformedInput is returned when a command cannot be parsed
	ErrMalformedInput = errors.New("malformed input")

	// ErrRoundInProgress is returned when winners are requested before the
	// round has settled
	ErrRoundInProgress = errors.New("round still in progress")

	// ErrPotAwarded is returned when the pot of a settled round is awarded twice
	ErrPotAwarded = errors.New("pot already awarded")

	// ErrPlayerFolded is returned when a folded player tries to act
	ErrPlayerFolded = errors.New("player has folded")

	// ErrRoundSettled is returned when an action arrives after betting has
	// closed, either because one player is left or Showdown was reached
	ErrRoundSettled = errors.New("round already settled")

	// ErrNoContenders is returned when every seat folded, so nobody can
	// take the pot
	ErrNoContenders = errors.New("no players left in the round")
)

// ShortfallError reports a bet that is below the minimum call while the
// player still has chips to cover more.
type ShortfallError struct {
	Player      string
	Requested   int
	MinimumCall int
	TurnBet     int
	Chips       int
}

// Required is what the player must put in this stage to meet the minimum call
func (e *ShortfallError) Required() int {
	return e.MinimumCall - e.TurnBet
}

// Shortfall is how far the requested amount falls short of Required
func (e *ShortfallError) Shortfall() int {
	return e.Required() - e.Requested
}

// Uncovered is how much of the minimum call the player could not meet even
// by betting the whole stack. When it is positive the only ways to stay in
// are going all-in for Chips or folding.
func (e *ShortfallError) Uncovered() int {
	return max(e.MinimumCall-(e.TurnBet+e.Chips), 0)
}

func (e *ShortfallError) Error() string {
	if e.Uncovered() > 0 {
		return fmt.Sprintf("bet of %d is below the minimum call of %d; %s cannot cover the call (%d short) and must go all-in for %d or fold",
			e.Requested, e.MinimumCall, e.Player, e.Uncovered(), e.Chips)
	}
	return fmt.Sprintf("bet of %d is below the minimum call of %d; %s has %d in this stage and needs at least %d more",
		e.Requested, e.MinimumCall, e.Player, e.TurnBet, e.Required())
}

func (e *ShortfallError) Unwrap() error { return ErrInvalidAction }

// CheckError reports a check attempted while a call is owed
type CheckError struct {
	Player      string
	MinimumCall int
	TurnBet     int
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s cannot check: minimum call is %d, %d in this stage, %d still needed",
		e.Player, e.MinimumCall, e.TurnBet, e.MinimumCall-e.TurnBet)
}

func (e *CheckError) Unwrap() error { return ErrIllegalCheck }

// IsRecoverable reports whether err is a rejection the player can answer
// with another action, as opposed to a failure of the engine or its input.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrIllegalCheck) ||
		errors.Is(err, ErrMalformedInput)
}
