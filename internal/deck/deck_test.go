package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-rules/internal/randutil"
)

func TestNewDeckHasFiftyTwoDistinctCards(t *testing.T) {
	d := NewDeck(randutil.New(1))
	require.Equal(t, 52, d.Remaining())

	cards := d.Deal(52)
	require.Len(t, cards, 52)

	seen := make(map[Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Equal(t, 0, d.Remaining())
}

func TestDealWithoutReplacement(t *testing.T) {
	d := NewDeck(randutil.New(2))
	first := d.Deal(2)
	second := d.Deal(3)

	require.Len(t, first, 2)
	require.Len(t, second, 3)
	assert.Equal(t, 47, d.Remaining())
	for _, a := range first {
		assert.NotContains(t, second, a)
	}
}

func TestDealTooManyReturnsNil(t *testing.T) {
	d := NewDeck(randutil.New(3))
	d.Deal(50)
	assert.Nil(t, d.Deal(3))
	assert.Equal(t, 2, d.Remaining())
}

func TestResetRestoresAndReshuffles(t *testing.T) {
	d := NewDeck(randutil.New(4))
	before := d.Deal(10)
	d.Reset()

	assert.Equal(t, 52, d.Remaining())
	after := d.Deal(10)
	assert.NotEqual(t, before, after)
}

func TestSameSeedSameOrder(t *testing.T) {
	a := NewDeck(randutil.New(99)).Deal(52)
	b := NewDeck(randutil.New(99)).Deal(52)
	assert.Equal(t, a, b)
}

func TestNewDeckRequiresRNG(t *testing.T) {
	assert.Panics(t, func() { NewDeck(nil) })
}
