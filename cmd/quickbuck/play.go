package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quickbuck/internal/core"
	"github.com/vovakirdan/quickbuck/internal/games/quickbuck"
	"github.com/vovakirdan/quickbuck/internal/platform/tui"
	"github.com/vovakirdan/quickbuck/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Quick Buck",
	Long: `Start playing on the local terminal.

Controls:
  Left/A     - Move one lane left
  Right/D    - Move one lane right
  P/Esc      - Pause / resume
  B          - Back to title (while paused)
  Enter      - Play (on the title screen)
  Q/Ctrl+C   - Quit

Examples:
  quickbuck play
  quickbuck play --fps 30
  quickbuck play --log-level debug --log-file quickbuck.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(quickbuck.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
