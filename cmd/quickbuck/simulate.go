package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/quickbuck/internal/config"
	"github.com/vovakirdan/quickbuck/internal/core"
	"github.com/vovakirdan/quickbuck/internal/games/quickbuck"
)

var (
	flagFrames int
	flagDT     time.Duration
	flagMoves  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a terminal UI",
	Long: `Step the game a fixed number of frames with a constant frame time and
print the final state as YAML. With the same seed, config and moves the output
is identical on every run.

Moves is a string with one action per frame, starting at frame 1:
  L = left, R = right, . = nothing

Examples:
  quickbuck simulate --frames 63 --dt 16ms --seed 1
  quickbuck simulate --frames 120 --moves "L....R" --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of frames to simulate")
	simulateCmd.Flags().DurationVar(&flagDT, "dt", time.Second/60, "Elapsed time per frame")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Per-frame inputs: L, R or .")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}
	if flagDT < 0 {
		return fmt.Errorf("--dt must not be negative, got %s", flagDT)
	}

	inputs, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := quickbuck.New()
	game.ResetWithConfig(core.RuntimeConfig{TickRate: flagFPS, Seed: seed}, cfg)
	logger.Info("simulating", "frames", flagFrames, "dt", flagDT, "seed", seed)

	in := core.NewInputFrame()
	for i := 0; i < flagFrames; i++ {
		in.Clear()
		if i < len(inputs) && inputs[i] != core.ActionNone {
			in.Set(inputs[i])
		}
		game.Step(in, flagDT)
	}

	out, err := yaml.Marshal(game.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// parseMoves turns a move string into one action per frame.
func parseMoves(s string) ([]core.Action, error) {
	actions := make([]core.Action, 0, len(s))
	for i, r := range s {
		switch r {
		case 'L', 'l':
			actions = append(actions, core.ActionLeft)
		case 'R', 'r':
			actions = append(actions, core.ActionRight)
		case '.':
			actions = append(actions, core.ActionNone)
		default:
			return nil, fmt.Errorf("--moves: unexpected %q at position %d", r, i)
		}
	}
	return actions, nil
}
