package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-rules/internal/deck"
	"github.com/lox/holdem-rules/internal/randutil"
)

func mustEvaluate(t *testing.T, notation string) Hand {
	t.Helper()
	hand, err := Evaluate7(deck.MustParseCards(notation))
	require.NoError(t, err)
	return hand
}

func ranksOf(t *testing.T, notation string) []deck.Rank {
	t.Helper()
	cards := deck.MustParseCards(notation)
	ranks := make([]deck.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}

func TestEvaluate7Categories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category HandCategory
		best     string // ranks of the best five, suits ignored
	}{
		{"royal flush", "AsKsQsJsTs9h8h", RoyalFlush, "AsKsQsJsTs"},
		{"straight flush", "9s8s7s6s5s4h3h", StraightFlush, "9s8s7s6s5s"},
		{"steel wheel", "As2s3s4s5sKhQd", StraightFlush, "5s4s3s2sAs"},
		{"four of a kind", "AsAhAdAcKs2h3h", FourOfAKind, "AsAhAdAcKs"},
		{"full house", "AsAhAdKsKh2h3h", FullHouse, "AsAhAdKsKh"},
		{"full house from two trips", "KsKhKdQsQhQd2c", FullHouse, "KsKhKdQsQh"},
		{"flush", "AsKsQs8s6s4h3h", Flush, "AsKsQs8s6s"},
		{"straight", "AsKhQdJcTs9h8h", Straight, "AsKhQdJcTs"},
		{"wheel", "Ah2d3c4s5hKdJc", Straight, "5h4s3c2dAh"},
		{"three of a kind", "AsAhAdKs9c7h5h", ThreeOfAKind, "AsAhAdKs9c"},
		{"two pair", "AsAhKdKs9c7h5h", TwoPair, "AsAhKdKs9c"},
		{"one pair", "AsAhKdQs9c7h5h", OnePair, "AsAhKdQs9c"},
		{"high card", "AsKhQd9s7c5h3h", HighCard, "AsKhQd9s7c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := mustEvaluate(t, tt.cards)
			assert.Equal(t, tt.category, hand.Category)
			require.Len(t, hand.Cards, 5)
			assert.Equal(t, ranksOf(t, tt.best), hand.Ranks())
		})
	}
}

func TestEvaluate7RejectsWrongCardCount(t *testing.T) {
	for _, n := range []int{0, 5, 6, 8} {
		cards := deck.NewDeck(randutil.New(int64(n))).Deal(n)
		_, err := Evaluate7(cards)
		assert.ErrorIs(t, err, ErrInvalidCardCount, "n=%d", n)
	}
}

func TestFlushKeepsOnlyTopFive(t *testing.T) {
	hand := mustEvaluate(t, "AhJh9h7h5h3h2h")
	assert.Equal(t, Flush, hand.Category)
	assert.Equal(t, ranksOf(t, "AhJh9h7h5h"), hand.Ranks())
}

func TestFlushBeatsUnsuitedStraight(t *testing.T) {
	// 9-high straight exists off-suit, but the hearts make a flush
	hand := mustEvaluate(t, "9h8h7c6h5d2hKh")
	assert.Equal(t, Flush, hand.Category)
	assert.Equal(t, ranksOf(t, "Kh9h8h6h2h"), hand.Ranks())
}

func TestStraightPrefersHighestRun(t *testing.T) {
	hand := mustEvaluate(t, "9c8d7h6s5c4d3h")
	assert.Equal(t, Straight, hand.Category)
	assert.Equal(t, deck.Nine, hand.Cards[0].Rank)
}

func TestStraightWithPairedRank(t *testing.T) {
	hand := mustEvaluate(t, "Tc9d9h8s7c6d2h")
	assert.Equal(t, Straight, hand.Category)
	assert.Equal(t, ranksOf(t, "Tc9d8s7c6d"), hand.Ranks())
}

func TestWheelTopCardIsFive(t *testing.T) {
	hand := mustEvaluate(t, "As2d3h4c5sJdQh")
	assert.Equal(t, Straight, hand.Category)
	assert.Equal(t, deck.Five, hand.Cards[0].Rank)
	assert.Equal(t, deck.Ace, hand.Cards[4].Rank)

	// a six-high straight outranks the wheel
	six := mustEvaluate(t, "As2d3h4c5s6dQh")
	assert.Equal(t, deck.Six, six.Cards[0].Rank)
	assert.True(t, six.Beats(hand))
}

func TestNoWrapAroundStraight(t *testing.T) {
	hand := mustEvaluate(t, "QsKdAh2c3s8d7h")
	assert.Equal(t, HighCard, hand.Category)
}

func TestFourOfAKindKickerIsHighestRemaining(t *testing.T) {
	// remaining cards are a pair of threes and a king; the king plays
	hand := mustEvaluate(t, "7s7h7d7c3s3hKd")
	assert.Equal(t, FourOfAKind, hand.Category)
	assert.Equal(t, ranksOf(t, "7s7h7d7cKd"), hand.Ranks())

	// with trips remaining the kicker is still a single card of that rank
	hand = mustEvaluate(t, "2s2h2d2cAsAhAd")
	assert.Equal(t, ranksOf(t, "2s2h2d2cAs"), hand.Ranks())
}

func TestTwoPairKickerFromThreePairs(t *testing.T) {
	hand := mustEvaluate(t, "9s9h5d5c3s3hAd")
	assert.Equal(t, TwoPair, hand.Category)
	assert.Equal(t, ranksOf(t, "9s9h5d5cAd"), hand.Ranks())

	hand = mustEvaluate(t, "AsAhKdKcQsQh3d")
	assert.Equal(t, ranksOf(t, "AsAhKdKcQs"), hand.Ranks())
}

func TestFullHousePicksHighestPair(t *testing.T) {
	hand := mustEvaluate(t, "5s5h5dKcKs2h2d")
	assert.Equal(t, FullHouse, hand.Category)
	assert.Equal(t, ranksOf(t, "5s5h5dKcKs"), hand.Ranks())
}

func TestEvaluateIsOrderIndependent(t *testing.T) {
	rng := randutil.New(5)
	for range 200 {
		cards := deck.NewDeck(rng).Deal(7)
		want, err := Evaluate7(cards)
		require.NoError(t, err)

		shuffled := append([]deck.Card(nil), cards...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := Evaluate7(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cards %v", cards)
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	cards := deck.MustParseCards("2c7dAsKh9s3d5c")
	original := append([]deck.Card(nil), cards...)
	_, err := Evaluate7(cards)
	require.NoError(t, err)
	assert.Equal(t, original, cards)
}

// multiplicity returns group sizes of the best five in descending order
func multiplicity(h Hand) []int {
	counts := map[deck.Rank]int{}
	for _, c := range h.Cards {
		counts[c.Rank]++
	}
	var sizes []int
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	for i := 1; i < len(sizes); i++ {
		for j := i; j > 0 && sizes[j] > sizes[j-1]; j-- {
			sizes[j], sizes[j-1] = sizes[j-1], sizes[j]
		}
	}
	return sizes
}

func TestBestFiveMatchesCategory(t *testing.T) {
	rng := randutil.New(11)
	for range 2000 {
		hand, err := Evaluate7(deck.NewDeck(rng).Deal(7))
		require.NoError(t, err)
		require.True(t, hand.Category.Valid())
		require.Len(t, hand.Cards, 5)

		sizes := multiplicity(hand)
		switch hand.Category {
		case FourOfAKind:
			assert.Equal(t, []int{4, 1}, sizes, hand.String())
		case FullHouse:
			assert.Equal(t, []int{3, 2}, sizes, hand.String())
		case ThreeOfAKind:
			assert.Equal(t, []int{3, 1, 1}, sizes, hand.String())
		case TwoPair:
			assert.Equal(t, []int{2, 2, 1}, sizes, hand.String())
		case OnePair:
			assert.Equal(t, []int{2, 1, 1, 1}, sizes, hand.String())
		default:
			assert.Equal(t, []int{1, 1, 1, 1, 1}, sizes, hand.String())
		}

		if hand.Category == Flush || hand.Category >= StraightFlush {
			for _, c := range hand.Cards {
				assert.Equal(t, hand.Cards[0].Suit, c.Suit, hand.String())
			}
		}
	}
}

func TestBestJoinsHoleAndBoard(t *testing.T) {
	hand, err := Best(deck.MustParseCards("AsAh"), deck.MustParseCards("Ad Ac 2s 7h 9d"))
	require.NoError(t, err)
	assert.Equal(t, FourOfAKind, hand.Category)

	_, err = Best(deck.MustParseCards("AsAh"), deck.MustParseCards("Ad Ac 2s"))
	assert.ErrorIs(t, err, ErrInvalidCardCount)
}
