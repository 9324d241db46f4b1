package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryDominatesKickers(t *testing.T) {
	// weakest possible full house against the strongest non-straight flush
	fullHouse := mustEvaluate(t, "2s2h2d3c3s7h9d")
	flush := mustEvaluate(t, "AhKhQhJh9h2c3d")

	assert.Equal(t, FullHouse, fullHouse.Category)
	assert.Equal(t, Flush, flush.Category)
	assert.Equal(t, 1, fullHouse.Compare(flush))
	assert.Equal(t, -1, flush.Compare(fullHouse))
}

func TestKickerBreaksTripsTie(t *testing.T) {
	high := mustEvaluate(t, "8s8h8dAc4s3h2c")
	low := mustEvaluate(t, "8c8s8hKc4d3s2d")

	assert.Equal(t, ThreeOfAKind, high.Category)
	assert.Equal(t, ThreeOfAKind, low.Category)
	assert.True(t, high.Beats(low))
	assert.False(t, low.Beats(high))
	assert.Equal(t, -1, low.Compare(high))
}

func TestCompareIsTotalWithinCategory(t *testing.T) {
	// a comparison that combined category and cards with a logical AND would
	// call these neither greater, less, nor equal
	a := mustEvaluate(t, "KsKhQd9c7s4h2d")
	b := mustEvaluate(t, "KdKcJd9s7h4c2s")

	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.False(t, a.Ties(b))
}

func TestIdenticalRanksTie(t *testing.T) {
	a := mustEvaluate(t, "AsKd9h7c5s3d2c")
	b := mustEvaluate(t, "AhKc9s7d5h3c2d")

	assert.True(t, a.Ties(b))
	assert.Equal(t, 0, a.Compare(b))
}

func TestBoardPlaysTie(t *testing.T) {
	// both players play the broadway straight on the board
	a := mustEvaluate(t, "AsKdQhJcTs2d3c")
	b := mustEvaluate(t, "AsKdQhJcTs4h5h")
	assert.True(t, a.Ties(b))
}

func TestCompareWithExplanation(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		result  int
		explain string
	}{
		{
			name:    "different categories",
			a:       "AsAhKdKs9c7h5h",
			b:       "AsAhKdQs9c7h5h",
			result:  1,
			explain: "(Two Pair beats One Pair)",
		},
		{
			name:    "higher pair",
			a:       "QsQh9d7c5s3h2d",
			b:       "JsJh9c7d5h3c2s",
			result:  1,
			explain: "higher pair (Q vs J)",
		},
		{
			name:    "kicker",
			a:       "QsQh9d7c5s3h2d",
			b:       "QdQcTd7h5c3s2s",
			result:  -1,
			explain: "higher kicker (T vs 9)",
		},
		{
			name:    "straight height",
			a:       "9s8h7d6c5s2h2d",
			b:       "As2h3d4c5h9dJc",
			result:  1,
			explain: "higher straight (9-high vs 5-high)",
		},
		{
			name:    "tie",
			a:       "AsKd9h7c5s3d2c",
			b:       "AhKc9s7d5h3c2d",
			result:  0,
			explain: "hands tie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, explanation := mustEvaluate(t, tt.a).CompareWithExplanation(mustEvaluate(t, tt.b))
			assert.Equal(t, tt.result, result)
			assert.Contains(t, explanation, tt.explain)
		})
	}
}

func TestHandString(t *testing.T) {
	hand := mustEvaluate(t, "AsAhKdKs9c7h5h")
	assert.Equal(t, "Two Pair [A♠ A♥ K♠ K♦ 9♣]", hand.String())
}

func TestCategoryStrings(t *testing.T) {
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "High Card", HighCard.String())
	assert.Equal(t, "Unknown", HandCategory(0).String())
	assert.Equal(t, 1, int(HighCard))
	assert.Equal(t, 10, int(RoyalFlush))
}
