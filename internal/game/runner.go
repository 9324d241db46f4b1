package game

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ActionSource supplies decisions for players. Implementations may block,
// and should return promptly once ctx is done.
type ActionSource interface {
	NextAction(ctx context.Context, view Snapshot, p *Player) (Action, error)
}

// ActionSourceFunc adapts a function to ActionSource
type ActionSourceFunc func(ctx context.Context, view Snapshot, p *Player) (Action, error)

func (f ActionSourceFunc) NextAction(ctx context.Context, view Snapshot, p *Player) (Action, error) {
	return f(ctx, view, p)
}

// Feedback is implemented by sources that want to be told why an action
// was refused before they are asked again
type Feedback interface {
	Rejected(p *Player, err error)
}

// Presenter shows a player their own state when they ask for info
type Presenter interface {
	ShowPlayer(view PlayerView)
}

// Runner plays hands on a Round by prompting an ActionSource for each seat
type Runner struct {
	round       *Round
	source      ActionSource
	presenter   Presenter
	openingCall int
	logger      *log.Logger
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithOpeningCall sets the minimum call forced at the start of each hand
func WithOpeningCall(amount int) RunnerOption {
	return func(rn *Runner) { rn.openingCall = amount }
}

// WithPresenter sets where info requests are shown
func WithPresenter(p Presenter) RunnerOption {
	return func(rn *Runner) { rn.presenter = p }
}

// WithRunnerLogger sets the runner's logger
func WithRunnerLogger(logger *log.Logger) RunnerOption {
	return func(rn *Runner) { rn.logger = logger }
}

// NewRunner creates a runner for round
func NewRunner(round *Round, source ActionSource, opts ...RunnerOption) *Runner {
	rn := &Runner{
		round:  round,
		source: source,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(rn)
	}
	return rn
}

// Round returns the round being played
func (rn *Runner) Round() *Round { return rn.round }

// PlayHand deals a new hand and prompts players in seat order until it
// settles, then awards the pot. Stages advance as soon as their betting is
// complete, so a hand with nobody left to act runs out to Showdown.
func (rn *Runner) PlayHand(ctx context.Context) ([]Payout, error) {
	r := rn.round
	r.StartNewRound()
	r.SetMinimumCall(rn.openingCall)

	for !r.SettleRound() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.StageComplete() {
			r.AdvanceStage()
			continue
		}

		p := r.NextSeat()
		if !p.CanAct() || (p.Acted && p.TurnBet >= r.MinimumCall()) {
			continue
		}
		if err := rn.takeTurn(ctx, p); err != nil {
			return nil, err
		}
	}

	return r.Award()
}

// takeTurn prompts p until an action is accepted
func (rn *Runner) takeTurn(ctx context.Context, p *Player) error {
	r := rn.round
	for {
		action, err := rn.source.NextAction(ctx, r.Snapshot(p), p)
		if err != nil {
			return fmt.Errorf("reading action for %s: %w", p.Name, err)
		}

		if action.Kind == Info {
			if rn.presenter != nil {
				rn.presenter.ShowPlayer(r.View(p))
			}
			continue
		}

		err = r.Apply(p, action)
		if err == nil {
			return nil
		}
		if !IsRecoverable(err) {
			return err
		}

		rn.logger.Debug("Retrying turn", "player", p.Name, "error", err)
		if fb, ok := rn.source.(Feedback); ok {
			fb.Rejected(p, err)
		}
	}
}
