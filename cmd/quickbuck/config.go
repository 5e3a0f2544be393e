package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quickbuck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Resolve the game config the same way play does and print it as YAML.

Search order:
  1. --config path
  2. ~/.arcade/configs/quickbuck.yaml
  3. ./configs/quickbuck.yaml
  4. built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
