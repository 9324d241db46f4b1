package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/paulhankin/poker"

	"github.com/lox/holdem-rules/internal/deck"
	"github.com/lox/holdem-rules/internal/evaluator"
	"github.com/lox/holdem-rules/internal/randutil"
)

type globals struct {
	out io.Writer
}

// EvalCmd classifies seven cards
type EvalCmd struct {
	Cards []string `arg:"" help:"Seven cards, e.g. As Kd 7h 7c 2s 9d Th"`
	Check bool     `help:"Cross-check the category against github.com/paulhankin/poker"`
}

func (c *EvalCmd) Run(g *globals) error {
	cards, err := deck.ParseCards(strings.Join(c.Cards, ""))
	if err != nil {
		return err
	}
	hand, err := evaluator.Evaluate7(cards)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, hand)

	if c.Check {
		desc, err := describe(cards)
		if err != nil {
			return fmt.Errorf("reference evaluator: %w", err)
		}
		fmt.Fprintf(g.out, "reference: %s\n", desc)
	}
	return nil
}

// CompareCmd evaluates two sets of hole cards against a shared board
type CompareCmd struct {
	Board  string `required:"" help:"Five community cards, e.g. 2c7d9hJc3s"`
	First  string `arg:"" help:"First player's hole cards"`
	Second string `arg:"" help:"Second player's hole cards"`
}

func (c *CompareCmd) Run(g *globals) error {
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	hands := make([]evaluator.Hand, 2)
	for i, hole := range []string{c.First, c.Second} {
		cards, err := deck.ParseCards(hole)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		if hands[i], err = evaluator.Best(cards, board); err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		fmt.Fprintf(g.out, "%s: %s\n", hole, hands[i])
	}

	_, explanation := hands[0].CompareWithExplanation(hands[1])
	fmt.Fprintln(g.out, explanation)
	return nil
}

// SampleCmd deals random seven-card hands and lists the strong ones
type SampleCmd struct {
	Count int    `arg:"" optional:"" default:"1000" help:"Number of hands to deal"`
	Min   string `default:"Full House" help:"Weakest category to list"`
	Seed  int64  `help:"Deck seed (0 seeds from the clock)"`
}

func (c *SampleCmd) Run(g *globals) error {
	threshold, ok := parseCategory(c.Min)
	if !ok {
		return fmt.Errorf("unknown category %q", c.Min)
	}

	rng, seed := randutil.Seeded(c.Seed)
	log.Debug("Sampling", "count", c.Count, "seed", seed)

	d := deck.NewDeck(rng)
	counts := make(map[evaluator.HandCategory]int)
	for range c.Count {
		d.Reset()
		hand, err := evaluator.Evaluate7(d.Deal(7))
		if err != nil {
			return err
		}
		counts[hand.Category]++
		if hand.Category >= threshold {
			fmt.Fprintln(g.out, hand)
		}
	}

	fmt.Fprintf(g.out, "\n%d hands (seed %d)\n", c.Count, seed)
	for cat := evaluator.RoyalFlush; cat >= evaluator.HighCard; cat-- {
		fmt.Fprintf(g.out, "%-16s %6d\n", cat, counts[cat])
	}
	return nil
}

func parseCategory(name string) (evaluator.HandCategory, bool) {
	for cat := evaluator.HighCard; cat <= evaluator.RoyalFlush; cat++ {
		if strings.EqualFold(cat.String(), strings.TrimSpace(name)) {
			return cat, true
		}
	}
	return 0, false
}

var referenceSuits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

// describe names the hand using paulhankin/poker, where the Ace is rank 1
func describe(cards []deck.Card) (string, error) {
	converted := make([]poker.Card, len(cards))
	for i, c := range cards {
		suit := referenceSuits[c.Suit]
		rank := poker.Rank(c.Rank)
		if c.Rank == deck.Ace {
			rank = 1
		}
		pc, err := poker.MakeCard(suit, rank)
		if err != nil {
			return "", err
		}
		converted[i] = pc
	}
	return poker.Describe(converted)
}

type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Eval    EvalCmd    `cmd:"" default:"withargs" help:"Evaluate seven cards"`
	Compare CompareCmd `cmd:"" help:"Compare two hands on a shared board"`
	Sample  SampleCmd  `cmd:"" help:"Deal random hands"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-eval"),
		kong.Description("Seven-card Texas Hold'em hand evaluator."),
	)

	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(&globals{out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
