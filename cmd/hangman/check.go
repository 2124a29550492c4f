package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/hangman/internal/game"
)

// CheckCmd applies guesses without a terminal UI
type CheckCmd struct {
	GameFlags `embed:""`

	Guesses []string `arg:"" optional:"" help:"Letters to guess, in order"`
}

func (c *CheckCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *CheckCmd) run(w io.Writer) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	session, err := game.NewSession(cfg.Game.Target, cfg.SessionOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Fprintln(w, session)
	for i, token := range c.Guesses {
		if session.Status().IsOver() {
			fmt.Fprintf(w, "game over, ignoring %d remaining guesses\n", len(c.Guesses)-i)
			break
		}

		outcome, err := apply(session, token)
		if err != nil {
			return fmt.Errorf("guess %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "%-3s %-6s %-14s %s  %s\n", token, outcome.kind, outcome.indices, session.Revealed(), session.Status())
	}

	status := session.Status()
	switch {
	case status.IsWon():
		fmt.Fprintln(w, "won")
	case status.IsLost():
		fmt.Fprintf(w, "lost, the answer was %q\n", session.Target())
	default:
		fmt.Fprintf(w, "in progress, %d misses left\n", status.Remaining())
	}
	return nil
}

type outcome struct {
	kind    string
	indices string
}

func apply(session *game.Session, token string) (outcome, error) {
	guessed, err := session.HasBeenGuessed(token)
	if err != nil {
		return outcome{}, err
	}
	if guessed {
		return outcome{kind: "repeat"}, nil
	}

	indices, err := session.Guess(token)
	switch {
	case errors.Is(err, game.ErrGameOver):
		return outcome{kind: "over"}, nil
	case err != nil:
		return outcome{}, err
	case len(indices) == 0:
		return outcome{kind: "miss"}, nil
	}
	return outcome{kind: "hit", indices: fmt.Sprint(indices)}, nil
}
