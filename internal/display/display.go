// Package display renders round snapshots and game events for a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-rules/internal/deck"
	"github.com/lox/holdem-rules/internal/game"
)

// Styles contains styling for the table
type Styles struct {
	Prompt    lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Header    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Pot       lipgloss.Style
	Player    lipgloss.Style
	Viewer    lipgloss.Style
	Folded    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Prompt:    r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:      r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Header:    r.NewStyle().Bold(true),
		RedCard:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		BlackCard: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).Bold(true),
		Pot:       r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Player:    r.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Viewer:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Folded:    r.NewStyle().Foreground(lipgloss.Color("#626262")).Strikethrough(true),
	}
}

// Printer writes styled table output to a terminal
type Printer struct {
	w      io.Writer
	styles Styles
}

// New creates a printer for w. Options are passed to termenv, so
// termenv.WithProfile(termenv.Ascii) gives plain output.
func New(w io.Writer, opts ...termenv.OutputOption) *Printer {
	r := lipgloss.NewRenderer(w, opts...)
	return &Printer{w: w, styles: newStyles(r)}
}

// Styles returns the printer's styles
func (p *Printer) Styles() Styles { return p.styles }

// Card renders one card in its suit colour
func (p *Printer) Card(c deck.Card) string {
	if c.IsRed() {
		return p.styles.RedCard.Render(c.String())
	}
	return p.styles.BlackCard.Render(c.String())
}

// Cards renders cards in brackets, or "[]" for none
func (p *Printer) Cards(cards []deck.Card) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = p.Card(c)
	}
	return "[" + strings.Join(rendered, " ") + "]"
}

// Table renders a snapshot as a header, the board and one line per seat
func (p *Printer) Table(s game.Snapshot) string {
	var b strings.Builder

	b.WriteString(p.styles.Header.Render(fmt.Sprintf("Hand %d • %s", s.Hand, s.Stage)))
	b.WriteString("  ")
	b.WriteString(p.styles.Pot.Render(fmt.Sprintf("Pot: %d", s.Pot)))
	b.WriteString(p.styles.Info.Render(fmt.Sprintf("  Minimum call: %d", s.MinimumCall)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Board: %s\n", p.Cards(s.Community))

	for _, v := range s.Players {
		b.WriteString(p.seat(v))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (p *Printer) seat(v game.PlayerView) string {
	marker := "  "
	if v.Dealer {
		marker = "D "
	}

	name := p.styles.Player.Render(v.Name)
	switch {
	case v.Folded:
		name = p.styles.Folded.Render(v.Name)
	case v.Viewer:
		name = p.styles.Viewer.Render(v.Name)
	}

	line := fmt.Sprintf("%s%s  chips %d  bet %d (this stage %d)", marker, name, v.Chips, v.RoundBet, v.TurnBet)
	switch {
	case v.Folded:
		line += p.styles.Info.Render("  folded")
	case v.AllIn:
		line += p.styles.Pot.Render("  all-in")
	}
	if len(v.HoleCards) > 0 {
		line += "  " + p.Cards(v.HoleCards)
	}
	return line
}

// Player renders a seat's full state, as shown for the info command
func (p *Printer) Player(v game.PlayerView) string {
	return fmt.Sprintf("%s: %s | Chips: %d | Round Bet: %d | Stage Bet: %d | Folded: %t",
		p.styles.Viewer.Render(v.Name), p.Cards(v.HoleCards), v.Chips, v.RoundBet, v.TurnBet, v.Folded)
}

// Prompt renders the input prompt for the acting player
func (p *Printer) Prompt(v game.PlayerView, minimumCall int) string {
	owed := max(minimumCall-v.TurnBet, 0)
	return p.styles.Prompt.Render(fmt.Sprintf("%s (%d chips, %d to call)> ", v.Name, v.Chips, owed))
}

// ShowTable writes a snapshot
func (p *Printer) ShowTable(s game.Snapshot) {
	fmt.Fprintln(p.w, p.Table(s))
}

// ShowPlayer writes a seat's state. It satisfies game.Presenter.
func (p *Printer) ShowPlayer(v game.PlayerView) {
	fmt.Fprintln(p.w, p.Player(v))
}

// ShowError writes an error, styled, so the player can try again
func (p *Printer) ShowError(err error) {
	fmt.Fprintln(p.w, p.styles.Error.Render("Error: "+err.Error()))
}

// ShowInfo writes a dim informational line
func (p *Printer) ShowInfo(msg string) {
	fmt.Fprintln(p.w, p.styles.Info.Render(msg))
}
