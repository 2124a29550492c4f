// Package config loads hangman settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hangman/internal/game"
)

// Config represents the complete hangman configuration
type Config struct {
	Game GameSettings
	UI   UISettings
}

// GameSettings configures the guess engine
type GameSettings struct {
	Target           string `hcl:"target,optional"`
	CaseSensitive    bool   `hcl:"case_sensitive,optional"`
	MaxMisses        int    `hcl:"max_misses,optional"`
	Placeholder      string `hcl:"placeholder,optional"`
	RevealNonLetters bool   `hcl:"reveal_non_letters,optional"`
}

// UISettings configures the terminal front-end
type UISettings struct {
	ArtFile  string `hcl:"art_file,optional"`
	LogFile  string `hcl:"log_file,optional"`
	LogLevel string `hcl:"log_level,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// file is the on-disk shape; both blocks are optional.
type file struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Target:      "Silenus",
			MaxMisses:   game.DefaultMaxMisses,
			Placeholder: string(game.DefaultPlaceholder),
		},
		UI: UISettings{
			LogFile:  "hangman.log",
			LogLevel: "warn",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values from Default.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var decoded file
	diags = gohcl.DecodeBody(f.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if decoded.Game != nil {
		g := *decoded.Game
		if g.Target == "" {
			g.Target = cfg.Game.Target
		}
		if g.MaxMisses == 0 {
			g.MaxMisses = cfg.Game.MaxMisses
		}
		if g.Placeholder == "" {
			g.Placeholder = cfg.Game.Placeholder
		}
		cfg.Game = g
	}
	if decoded.UI != nil {
		ui := *decoded.UI
		if ui.LogFile == "" {
			ui.LogFile = cfg.UI.LogFile
		}
		if ui.LogLevel == "" {
			ui.LogLevel = cfg.UI.LogLevel
		}
		cfg.UI = ui
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Game.Target) == "" {
		return fmt.Errorf("target is required")
	}

	if c.Game.MaxMisses < 1 {
		return fmt.Errorf("max misses must be at least 1, got %d", c.Game.MaxMisses)
	}

	if utf8.RuneCountInString(c.Game.Placeholder) != 1 {
		return fmt.Errorf("placeholder must be a single character: %q", c.Game.Placeholder)
	}
	if unicode.IsLetter(c.PlaceholderRune()) {
		return fmt.Errorf("placeholder must not be a letter: %q", c.Game.Placeholder)
	}
	if strings.ContainsRune(c.Game.Target, c.PlaceholderRune()) {
		return fmt.Errorf("placeholder %q must not appear in the target", c.Game.Placeholder)
	}

	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// PlaceholderRune returns the placeholder as a rune
func (c *Config) PlaceholderRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Game.Placeholder)
	return r
}

// SessionOptions translates the game settings into engine options
func (c *Config) SessionOptions() []game.Option {
	opts := []game.Option{
		game.WithCaseSensitive(c.Game.CaseSensitive),
		game.WithMaxMisses(c.Game.MaxMisses),
		game.WithPlaceholder(c.PlaceholderRune()),
	}
	if c.Game.RevealNonLetters {
		opts = append(opts, game.WithRevealedNonLetters())
	}
	return opts
}
