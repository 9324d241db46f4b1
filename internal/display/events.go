package display

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-rules/internal/game"
)

// OnEvent narrates game events. It satisfies game.EventSubscriber.
func (p *Printer) OnEvent(event game.GameEvent) {
	if line := p.FormatEvent(event); line != "" {
		fmt.Fprintln(p.w, line)
	}
}

// FormatEvent renders an event as one or more lines. Rejections are left to
// whoever is prompting the player and render as "".
func (p *Printer) FormatEvent(event game.GameEvent) string {
	switch e := event.(type) {
	case game.RoundStartEvent:
		return "\n" + p.styles.Header.Render(fmt.Sprintf("=== Hand %d ===", e.Hand)) +
			p.styles.Info.Render(fmt.Sprintf("  Dealer: %s", e.Dealer))
	case game.StageChangeEvent:
		return p.formatStage(e)
	case game.PlayerActionEvent:
		return p.formatAction(e)
	case game.RoundEndEvent:
		return p.formatRoundEnd(e)
	default:
		return ""
	}
}

func (p *Printer) formatStage(e game.StageChangeEvent) string {
	title := p.styles.Header.Render(fmt.Sprintf("*** %s ***", strings.ToUpper(e.Stage.String())))
	return fmt.Sprintf("\n%s %s", title, p.Cards(e.Community))
}

func (p *Printer) formatAction(e game.PlayerActionEvent) string {
	pot := p.styles.Pot.Render(fmt.Sprintf("(pot now: %d)", e.PotAfter))

	switch e.Action.Kind {
	case game.Fold:
		return fmt.Sprintf("%s: folds", e.Player)
	case game.Check:
		return fmt.Sprintf("%s: checks", e.Player)
	case game.Call:
		return fmt.Sprintf("%s: calls %d %s", e.Player, e.Amount, pot)
	case game.AllIn:
		return fmt.Sprintf("%s: goes all-in for %d %s", e.Player, e.Amount, pot)
	default:
		if e.Amount < e.Action.Amount {
			return fmt.Sprintf("%s: bets %d, all-in %s", e.Player, e.Amount, pot)
		}
		return fmt.Sprintf("%s: bets %d %s", e.Player, e.Amount, pot)
	}
}

func (p *Printer) formatRoundEnd(e game.RoundEndEvent) string {
	var b strings.Builder
	if len(e.Board) > 0 {
		fmt.Fprintf(&b, "Board: %s\n", p.Cards(e.Board))
	}
	for _, w := range e.Winners {
		if w.Uncontested {
			b.WriteString(p.styles.Success.Render(fmt.Sprintf("%s wins %d", w.Name, w.Amount)))
			b.WriteString(p.styles.Info.Render(" (everyone else folded)"))
		} else {
			b.WriteString(p.styles.Success.Render(fmt.Sprintf("%s wins %d with %s", w.Name, w.Amount, w.Hand.Category)))
			fmt.Fprintf(&b, " %s from %s", p.Cards(w.Hand.Cards), p.Cards(w.HoleCards))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
