// Package evaluator classifies seven cards into the best five-card poker
// hand and orders hands against each other.
package evaluator

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/lox/holdem-rules/internal/deck"
)

// ErrInvalidCardCount is returned when Evaluate7 is not given seven cards.
var ErrInvalidCardCount = errors.New("evaluator: exactly 7 cards required")

// Evaluate7 returns the best five-card hand that can be made from seven
// cards. The result does not depend on the order of the input.
func Evaluate7(cards []deck.Card) (Hand, error) {
	if len(cards) != 7 {
		return Hand{}, fmt.Errorf("%w, got %d", ErrInvalidCardCount, len(cards))
	}

	sorted := slices.Clone(cards)
	sortDescending(sorted)

	if suited := flushCards(sorted); suited != nil {
		if run := findStraight(suited); run != nil {
			category := StraightFlush
			if run[0].Rank == deck.Ace {
				category = RoyalFlush
			}
			return Hand{Category: category, Cards: run}, nil
		}
		return Hand{Category: Flush, Cards: suited[:5]}, nil
	}

	if run := findStraight(sorted); run != nil {
		return Hand{Category: Straight, Cards: run}, nil
	}

	return classifyGroups(sorted), nil
}

// Best evaluates hole cards together with the board.
func Best(hole, board []deck.Card) (Hand, error) {
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	return Evaluate7(all)
}

// sortDescending orders by rank, high first, with suit as a stable
// secondary key so equal-rank cards always land in the same order.
func sortDescending(cards []deck.Card) {
	slices.SortFunc(cards, func(a, b deck.Card) int {
		if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
			return c
		}
		return cmp.Compare(a.Suit, b.Suit)
	})
}

// flushCards returns every card of a suit holding five or more of the
// (sorted) cards, or nil.
func flushCards(sorted []deck.Card) []deck.Card {
	var counts [len(deck.Suits)]int
	for _, c := range sorted {
		counts[c.Suit]++
	}
	for suit, n := range counts {
		if n < 5 {
			continue
		}
		suited := make([]deck.Card, 0, n)
		for _, c := range sorted {
			if c.Suit == deck.Suit(suit) {
				suited = append(suited, c)
			}
		}
		return suited
	}
	return nil
}

// findStraight returns the highest five-card run in sorted cards, or nil.
// The top unique card is repeated at the end so an Ace can also close a
// 5-4-3-2-A wheel, whose first card is then the Five.
func findStraight(sorted []deck.Card) []deck.Card {
	unique := make([]deck.Card, 0, len(sorted)+1)
	for _, c := range sorted {
		if len(unique) == 0 || unique[len(unique)-1].Rank != c.Rank {
			unique = append(unique, c)
		}
	}
	if len(unique) < 5 {
		return nil
	}
	unique = append(unique, unique[0])

	for i := 0; i+5 <= len(unique); i++ {
		span := int(unique[i].Rank - unique[i+4].Rank)
		if ((span%13)+13)%13 == 4 {
			return slices.Clone(unique[i : i+5])
		}
	}
	return nil
}

type rankGroup struct {
	rank  deck.Rank
	cards []deck.Card
}

// classifyGroups handles every category decided by rank multiplicity.
func classifyGroups(sorted []deck.Card) Hand {
	var groups []rankGroup
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1].rank == c.Rank {
			groups[n-1].cards = append(groups[n-1].cards, c)
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank, cards: []deck.Card{c}})
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		if c := cmp.Compare(len(b.cards), len(a.cards)); c != 0 {
			return c
		}
		return cmp.Compare(b.rank, a.rank)
	})

	counts := make([]int, len(groups))
	for i, g := range groups {
		counts[i] = len(g.cards)
	}
	second := 0
	if len(counts) > 1 {
		second = counts[1]
	}

	var category HandCategory
	var made []deck.Card
	switch {
	case counts[0] == 4:
		category = FourOfAKind
		made = groups[0].cards
	case counts[0] == 3 && second >= 2:
		category = FullHouse
		made = append(slices.Clone(groups[0].cards), groups[1].cards[:2]...)
	case counts[0] == 3:
		category = ThreeOfAKind
		made = groups[0].cards
	case counts[0] == 2 && second == 2:
		category = TwoPair
		made = append(slices.Clone(groups[0].cards), groups[1].cards...)
	case counts[0] == 2:
		category = OnePair
		made = groups[0].cards
	default:
		category = HighCard
	}

	return Hand{Category: category, Cards: withKickers(made, sorted)}
}

// withKickers fills made up to five cards with the highest cards of sorted
// that it does not already use.
func withKickers(made, sorted []deck.Card) []deck.Card {
	best := make([]deck.Card, 0, 5)
	best = append(best, made...)
	for _, c := range sorted {
		if len(best) == 5 {
			break
		}
		if !slices.Contains(made, c) {
			best = append(best, c)
		}
	}
	return best
}
