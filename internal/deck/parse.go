package deck

import (
	"fmt"
	"strings"
)

// ParseCards parses card notation such as "AsKh Td" into cards.
// Ranks: A K Q J T (or 10) 9 8 7 6 5 4 3 2; suits: s h d c. Case and
// whitespace are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	cards := []Card{}
	for i := 0; i < len(s); {
		width := 1
		if strings.HasPrefix(s[i:], "10") {
			width = 2
		}
		if i+width >= len(s) {
			return nil, fmt.Errorf("incomplete card at position %d", i)
		}

		rank, err := parseRank(s[i : i+width])
		if err != nil {
			return nil, fmt.Errorf("invalid rank at position %d: %w", i, err)
		}
		suit, err := parseSuit(s[i+width])
		if err != nil {
			return nil, fmt.Errorf("invalid suit at position %d: %w", i+width, err)
		}

		cards = append(cards, NewCard(suit, rank))
		i += width + 1
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	if s == "10" {
		return Ten, nil
	}
	switch s[0] {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(s[0] - '0'), nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
