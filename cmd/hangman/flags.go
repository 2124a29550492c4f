package main

import (
	"fmt"

	"github.com/lox/hangman/internal/config"
)

// GameFlags are shared by every command that builds a session. Set flags
// override values from the config file.
type GameFlags struct {
	Config           string  `short:"c" default:"hangman.hcl" type:"path" help:"HCL config file (ignored if missing)"`
	Target           *string `short:"t" help:"Word or phrase to guess"`
	CaseSensitive    *bool   `negatable:"" help:"Match letter case exactly"`
	MaxMisses        *int    `short:"m" help:"Misses allowed before the game is lost"`
	Placeholder      *string `help:"Marker shown for hidden letters"`
	RevealNonLetters *bool   `negatable:"" help:"Show spaces and punctuation from the start"`
}

func (f *GameFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}

	if f.Target != nil {
		cfg.Game.Target = *f.Target
	}
	if f.CaseSensitive != nil {
		cfg.Game.CaseSensitive = *f.CaseSensitive
	}
	if f.MaxMisses != nil {
		cfg.Game.MaxMisses = *f.MaxMisses
	}
	if f.Placeholder != nil {
		cfg.Game.Placeholder = *f.Placeholder
	}
	if f.RevealNonLetters != nil {
		cfg.Game.RevealNonLetters = *f.RevealNonLetters
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
