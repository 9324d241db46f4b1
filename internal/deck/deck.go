package deck

import (
	rand "math/rand/v2"
)

// Deck is a standard 52-card deck dealt without replacement.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled 52-card deck. The rng is required so that
// shuffles are reproducible from a seed.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("deck: rng is required")
	}
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset restores the full 52 cards and reshuffles them.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.next = 0
	d.shuffle()
}

// shuffle is Fisher-Yates over the undealt cards
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > d.next; i-- {
		j := d.next + d.rng.IntN(i-d.next+1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes n cards from the top of the deck. It returns nil when fewer
// than n cards remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
