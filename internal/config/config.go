// Package config loads table configuration from HCL.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultOpeningCall   = 20
	DefaultStartingChips = 1000
	DefaultLogLevel      = "info"
	DefaultLogFile       = "holdem.log"

	// MaxPlayers is the most seats one deck can deal a full hand to
	MaxPlayers = 23
)

// Config is the complete configuration for a local table
type Config struct {
	Table   *TableSettings `hcl:"table,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// TableSettings holds table-wide settings
type TableSettings struct {
	OpeningCall   *int   `hcl:"opening_call,optional"` // Unset means DefaultOpeningCall
	StartingChips int    `hcl:"starting_chips,optional"`
	Seed          int64  `hcl:"seed,optional"`  // 0 seeds from the clock
	Hands         int    `hcl:"hands,optional"` // 0 plays until quit
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// PlayerConfig seats one player
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Chips int    `hcl:"chips,optional"`
}

// Default returns a three-handed table
func Default() *Config {
	cfg := &Config{
		Players: []PlayerConfig{{Name: "Alice"}, {Name: "Bob"}, {Name: "Carol"}},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.OpeningCall == nil {
		call := DefaultOpeningCall
		c.Table.OpeningCall = &call
	}
	if c.Table.StartingChips == 0 {
		c.Table.StartingChips = DefaultStartingChips
	}
	if c.Table.LogLevel == "" {
		c.Table.LogLevel = DefaultLogLevel
	}
	if c.Table.LogFile == "" {
		c.Table.LogFile = DefaultLogFile
	}
	for i := range c.Players {
		if c.Players[i].Chips == 0 {
			c.Players[i].Chips = c.Table.StartingChips
		}
	}
}

// Validate checks the configuration describes a playable table
func (c *Config) Validate() error {
	if n := len(c.Players); n < 2 || n > MaxPlayers {
		return fmt.Errorf("need between 2 and %d players, got %d", MaxPlayers, n)
	}
	if c.OpeningCall() < 0 {
		return fmt.Errorf("opening call must not be negative: %d", c.OpeningCall())
	}
	if c.Table.Hands < 0 {
		return fmt.Errorf("hands must not be negative: %d", c.Table.Hands)
	}
	if _, err := log.ParseLevel(c.Table.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Table.LogLevel, err)
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Name == "" {
			return errors.New("player name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.Chips <= 0 {
			return fmt.Errorf("player %s: chips must be positive", p.Name)
		}
	}
	return nil
}

// OpeningCall returns the minimum call forced at the start of each hand
func (c *Config) OpeningCall() int {
	return *c.Table.OpeningCall
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Table.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
