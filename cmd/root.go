package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/config"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/scorer"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "beamx-scorecard",
	Short: "SME business health scoring and advisory engine",
	Long:  "Scores SME questionnaire answers across five dimensions, derives risk and opportunity flags, and assembles a personalized advisory report with optional narrative polish.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return scorer.ValidateWeighting()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
