package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	src := `
table {
  opening_call   = 50
  starting_chips = 500
  seed           = 42
  hands          = 10
  log_level      = "debug"
}

player "Alice" {}

player "Bob" {
  chips = 2000
}
`
	cfg, err := Parse([]byte(src), "table.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.OpeningCall())
	assert.Equal(t, int64(42), cfg.Table.Seed)
	assert.Equal(t, 10, cfg.Table.Hands)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, DefaultLogFile, cfg.Table.LogFile)
	assert.Equal(t, []PlayerConfig{{Name: "Alice", Chips: 500}, {Name: "Bob", Chips: 2000}}, cfg.Players)
}

func TestParseWithoutTableBlock(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
player "Alice" {}
player "Bob" {}
`), "table.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultOpeningCall, cfg.OpeningCall())
	assert.Equal(t, DefaultStartingChips, cfg.Players[0].Chips)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestParseZeroOpeningCall(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
table {
  opening_call = 0
}
player "Alice" {}
player "Bob" {}
`), "table.hcl")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.OpeningCall())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`table {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Parse([]byte(`colour = "red"`), "unknown.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"too few players", func(c *Config) { c.Players = c.Players[:1] }, "need between 2"},
		{"duplicate names", func(c *Config) { c.Players[1].Name = "Alice" }, "duplicate name"},
		{"no chips", func(c *Config) { c.Players[0].Chips = -1 }, "chips must be positive"},
		{"negative opening call", func(c *Config) { *c.Table.OpeningCall = -5 }, "opening call"},
		{"bad log level", func(c *Config) { c.Table.LogLevel = "loud" }, "invalid log level"},
		{"too many players", func(c *Config) {
			for i := range MaxPlayers {
				c.Players = append(c.Players, PlayerConfig{Name: string(rune('a' + i)), Chips: 1})
			}
		}, "need between 2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}

	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
player "Dealer" { chips = 100 }
player "Guest" {}
`), 0o600))

	cfg, err = Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Players, 2)
	assert.Equal(t, 100, cfg.Players[0].Chips)
}
