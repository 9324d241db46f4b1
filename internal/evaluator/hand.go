package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-rules/internal/deck"
)

// Hand is the best five-card hand found in a set of seven cards.
type Hand struct {
	Category HandCategory
	// Cards holds exactly five cards in significance order: the defining
	// rank group(s) first, kickers last.
	Cards []deck.Card
}

// String returns a string representation of the hand
func (h Hand) String() string {
	cardStrs := make([]string, 0, len(h.Cards))
	for _, card := range h.Cards {
		cardStrs = append(cardStrs, card.String())
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(cardStrs, " "))
}

// Ranks returns the tie-break key: the ranks of Cards in order.
func (h Hand) Ranks() []deck.Rank {
	ranks := make([]deck.Rank, len(h.Cards))
	for i, c := range h.Cards {
		ranks[i] = c.Rank
	}
	return ranks
}

// Compare orders two hands by category, then by the ranks of their best
// five cards position by position. It returns -1, 0 or 1.
func (h Hand) Compare(other Hand) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}

	for i := 0; i < len(h.Cards) && i < len(other.Cards); i++ {
		if cmp := h.Cards[i].Compare(other.Cards[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

// Beats returns true if this hand is strictly stronger than other
func (h Hand) Beats(other Hand) bool {
	return h.Compare(other) > 0
}

// Ties returns true if both hands are equal in strength
func (h Hand) Ties(other Hand) bool {
	return h.Compare(other) == 0
}

// CompareWithExplanation compares two hands and says why one wins.
func (h Hand) CompareWithExplanation(other Hand) (int, string) {
	result := h.Compare(other)
	if result == 0 {
		return result, "hands tie"
	}

	winner, loser := h, other
	if result < 0 {
		winner, loser = other, h
	}
	explanation := fmt.Sprintf("%s beats %s", winner, loser)

	if winner.Category != loser.Category {
		return result, explanation + fmt.Sprintf(" (%s beats %s)", winner.Category, loser.Category)
	}

	// first differing card decides it
	for i := range winner.Cards {
		w, l := winner.Cards[i].Rank, loser.Cards[i].Rank
		if w == l {
			continue
		}
		switch {
		case i == 0 && (winner.Category == Straight || winner.Category == StraightFlush):
			explanation += fmt.Sprintf(" with a higher straight (%s-high vs %s-high)", w, l)
		case i == 0 && winner.Category == Flush:
			explanation += fmt.Sprintf(" with a higher flush (%s-high vs %s-high)", w, l)
		case i < groupWidth(winner.Category):
			explanation += fmt.Sprintf(" with higher %s (%s vs %s)", groupName(winner.Category, i), w, l)
		default:
			explanation += fmt.Sprintf(" with a higher kicker (%s vs %s)", w, l)
		}
		break
	}
	return result, explanation
}

// groupWidth is how many leading cards form the category's defining groups
func groupWidth(c HandCategory) int {
	switch c {
	case OnePair:
		return 2
	case ThreeOfAKind:
		return 3
	case TwoPair, FourOfAKind:
		return 4
	case FullHouse, Straight, Flush, StraightFlush, RoyalFlush:
		return 5
	default:
		return 1
	}
}

func groupName(c HandCategory, pos int) string {
	switch c {
	case OnePair:
		return "pair"
	case TwoPair:
		if pos < 2 {
			return "top pair"
		}
		return "bottom pair"
	case ThreeOfAKind:
		return "trips"
	case FourOfAKind:
		return "quads"
	case FullHouse:
		if pos < 3 {
			return "trips"
		}
		return "pair"
	default:
		return "high card"
	}
}
