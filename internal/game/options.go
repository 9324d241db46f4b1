package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-rules/internal/deck"
)

// Dealer is the card source for a round
type Dealer interface {
	Deal(n int) []deck.Card
	Reset()
}

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

type roundConfig struct {
	dealer      Dealer
	rng         *rand.Rand
	logger      *log.Logger
	bus         EventBus
	clock       quartz.Clock
	dealerIndex int
}

// WithDealer sets the card source. It overrides WithRNG.
func WithDealer(d Dealer) RoundOption {
	return func(c *roundConfig) { c.dealer = d }
}

// WithRNG shuffles a standard deck with rng. Without it (or WithDealer) the
// deck is time-seeded.
func WithRNG(rng *rand.Rand) RoundOption {
	return func(c *roundConfig) { c.rng = rng }
}

// WithLogger sets the logger. Default discards.
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) { c.logger = logger }
}

// WithEventBus sets the bus events are published on
func WithEventBus(bus EventBus) RoundOption {
	return func(c *roundConfig) { c.bus = bus }
}

// WithClock sets the clock used to timestamp events
func WithClock(clock quartz.Clock) RoundOption {
	return func(c *roundConfig) { c.clock = clock }
}

// WithDealerIndex sets the dealer seat before the first rotation, so the
// first round is dealt by the seat after it. Default 0.
func WithDealerIndex(seat int) RoundOption {
	return func(c *roundConfig) { c.dealerIndex = seat }
}
