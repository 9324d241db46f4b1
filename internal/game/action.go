package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind is what a player chooses to do on their turn
type ActionKind int

const (
	Bet ActionKind = iota
	Call
	AllIn
	Check
	Fold
	Info // Show the player's own state; not a betting action
)

func (k ActionKind) String() string {
	switch k {
	case Bet:
		return "bet"
	case Call:
		return "call"
	case AllIn:
		return "allin"
	case Check:
		return "check"
	case Fold:
		return "fold"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Action is a player decision. Amount is only meaningful for Bet.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	if a.Kind == Bet {
		return fmt.Sprintf("bet %d", a.Amount)
	}
	return a.Kind.String()
}

var commandAliases = map[string]ActionKind{
	"bet":    Bet,
	"b":      Bet,
	"call":   Call,
	"c":      Call,
	"allin":  AllIn,
	"all-in": AllIn,
	"a":      AllIn,
	"check":  Check,
	"k":      Check,
	"fold":   Fold,
	"f":      Fold,
	"info":   Info,
	"i":      Info,
}

// ParseCommand turns a line such as "bet 50" or "call" into an Action.
// Errors wrap ErrMalformedInput.
func ParseCommand(line string) (Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("%w: empty command", ErrMalformedInput)
	}

	kind, ok := commandAliases[fields[0]]
	if !ok {
		return Action{}, fmt.Errorf("%w: unknown command %q (try bet, call, allin, check, fold or info)", ErrMalformedInput, fields[0])
	}

	if kind != Bet {
		if len(fields) > 1 {
			return Action{}, fmt.Errorf("%w: %s takes no arguments", ErrMalformedInput, kind)
		}
		return Action{Kind: kind}, nil
	}

	if len(fields) != 2 {
		return Action{}, fmt.Errorf("%w: bet needs an amount, e.g. bet 50", ErrMalformedInput)
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil || amount < 0 {
		return Action{}, fmt.Errorf("%w: enter a valid amount, e.g. bet 50", ErrMalformedInput)
	}
	return Action{Kind: Bet, Amount: amount}, nil
}
