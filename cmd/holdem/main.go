package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/holdem-rules/internal/config"
	"github.com/lox/holdem-rules/internal/console"
	"github.com/lox/holdem-rules/internal/display"
	"github.com/lox/holdem-rules/internal/game"
	"github.com/lox/holdem-rules/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config      string `short:"c" help:"Table configuration file" default:"holdem.hcl" env:"HOLDEM_CONFIG" type:"path"`
	Seed        int64  `help:"Deck seed (0 seeds from the clock)" env:"HOLDEM_SEED"`
	Hands       int    `help:"Number of hands to play (0 plays until quit)" env:"HOLDEM_HANDS"`
	OpeningCall int    `help:"Minimum call forced at the start of each hand (-1 uses the config)" default:"-1" env:"HOLDEM_OPENING_CALL"`
	LogLevel    string `help:"Log level (debug, info, warn, error)" env:"HOLDEM_LOG_LEVEL"`
	LogFile     string `help:"Log file" env:"HOLDEM_LOG_FILE"`
}

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Hot-seat Texas Hold'em for the terminal."),
	)

	if err := run(cli); err != nil && !errors.Is(err, console.ErrQuit) {
		log.Fatal("Game failed", "error", err)
	}
	ctx.Exit(0)
}

func loadConfig(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.Seed != 0 {
		cfg.Table.Seed = cli.Seed
	}
	if cli.Hands != 0 {
		cfg.Table.Hands = cli.Hands
	}
	if cli.OpeningCall >= 0 {
		cfg.Table.OpeningCall = &cli.OpeningCall
	}
	if cli.LogLevel != "" {
		cfg.Table.LogLevel = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.Table.LogFile = cli.LogFile
	}
	return cfg, cfg.Validate()
}

func run(cli CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Logs go to a file so they don't interleave with the prompt
	logFile, err := os.OpenFile(cfg.Table.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level(),
		Prefix:          "holdem",
	})

	rng, seed := randutil.Seeded(cfg.Table.Seed)
	logger.Info("Starting table", "players", len(cfg.Players), "seed", seed, "opening_call", cfg.OpeningCall())

	players := make([]*game.Player, len(cfg.Players))
	for i, pc := range cfg.Players {
		players[i] = game.NewPlayer(pc.Name, pc.Chips)
	}

	printer := display.New(os.Stdout)
	bus := game.NewEventBus()
	bus.Subscribe(printer)
	bus.Subscribe(game.NewLogSubscriber(logger))

	round := game.NewRound(players,
		game.WithRNG(rng),
		game.WithLogger(logger),
		game.WithEventBus(bus),
	)

	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".holdem_history")
	}
	con, err := console.New(printer, logger, history)
	if err != nil {
		return err
	}
	defer func() {
		if err := con.Close(); err != nil {
			logger.Error("Failed to close console", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	printer.ShowInfo(fmt.Sprintf("Seed %d. Type 'help' for commands.", seed))

	runner := game.NewRunner(round, con,
		game.WithOpeningCall(cfg.OpeningCall()),
		game.WithPresenter(printer),
		game.WithRunnerLogger(logger),
	)
	return playHands(ctx, runner, players, cfg.Table.Hands, printer)
}

// playHands deals until the hand limit is reached, the user quits, or only
// one player has chips left
func playHands(ctx context.Context, runner *game.Runner, players []*game.Player, limit int, printer *display.Printer) error {
	for hand := 1; limit == 0 || hand <= limit; hand++ {
		if funded(players) < 2 {
			break
		}
		if _, err := runner.PlayHand(ctx); err != nil {
			return err
		}
	}

	printer.ShowInfo("Final chip counts:")
	for _, p := range players {
		printer.ShowInfo(fmt.Sprintf("  %s: %d", p.Name, p.Chips))
	}
	return nil
}

func funded(players []*game.Player) int {
	n := 0
	for _, p := range players {
		if p.Chips > 0 {
			n++
		}
	}
	return n
}
