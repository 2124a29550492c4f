package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hangman/internal/gallows"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/tui"
)

// PlayCmd runs the interactive terminal game
type PlayCmd struct {
	GameFlags `embed:""`

	Art     *string `help:"Gallows art file, stages separated by commas"`
	LogFile *string `help:"Debug log file"`
	Debug   bool    `help:"Enable debug logging"`
	NoColor bool    `help:"Disable colors"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	if c.Art != nil {
		cfg.UI.ArtFile = *c.Art
	}
	if c.LogFile != nil {
		cfg.UI.LogFile = *c.LogFile
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}

	logger, closer, err := setupLogger(cfg.UI.LogFile, cfg.UI.LogLevel, c.Debug)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	art := gallows.Default()
	if cfg.UI.ArtFile != "" {
		if art, err = gallows.LoadFile(cfg.UI.ArtFile); err != nil {
			return err
		}
	}

	session, err := game.NewSession(cfg.Game.Target, append(cfg.SessionOptions(), game.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	logger.Info("Starting game", "session", session.String(), "stages", art.Len())

	model := tui.NewTUIModel(session, art, logger, quartz.NewReal())
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runProgram(ctx, p, logger); err != nil {
		return err
	}

	status := session.Status()
	fmt.Println(session.RevealedWith(cfg.PlaceholderRune()))
	fmt.Println(status)
	return nil
}

// runProgram runs p until it exits or ctx is cancelled.
func runProgram(ctx context.Context, p *tea.Program, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("terminal UI failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Debug("Stopping terminal UI")
		p.Quit()
		return nil
	})
	return g.Wait()
}
