package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/advisor"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single business from an answers file",
	Long: `Score one completed questionnaire and print the report and advisory.

The input file is a JSON object with one field per questionnaire answer,
matching the POST /v1/assessments request body.

Examples:
  # Score and print the report as text
  score -f answers.json

  # Score with narrative polish, write JSON to a file
  score -f answers.json --polish --format json --output report.json

  # Score and persist the assessment
  score -f answers.json --save`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringP("file", "f", "", "path to answers JSON file (required)")
	f.Bool("polish", false, "rewrite the advisory through the narrative service")
	f.String("format", "text", "output format: text, json, or yaml")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "persist the assessment to the configured database")
	scoreCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path, _ := cmd.Flags().GetString("file")
	polish, _ := cmd.Flags().GetBool("polish")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")

	if format != "text" && format != "json" && format != "yaml" {
		return eris.Errorf("score: --format must be text, json, or yaml (got %q)", format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "score: read %s", path)
	}
	var answers model.AnswerSet
	if err := json.Unmarshal(data, &answers); err != nil {
		return eris.Wrapf(err, "score: parse %s", path)
	}

	var polisher *advisor.Polisher
	if polish {
		if polisher = newPolisher(); polisher == nil {
			return eris.New("score: --polish requires anthropic.key in config or BEAMX_ANTHROPIC_KEY")
		}
	}

	assessment, err := runAssessment(ctx, &answers, polisher)
	if err != nil {
		return err
	}

	zap.L().Info("assessment complete",
		zap.String("business", answers.BusinessName),
		zap.Float64("total_score", assessment.Report.TotalScore),
		zap.String("tier", assessment.Report.ReadinessTier),
		zap.Bool("polished", assessment.Polished),
	)

	if err := writeAssessment(assessment, format, outputPath); err != nil {
		return err
	}

	if save {
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.SaveAssessment(ctx, assessment); err != nil {
			return err
		}
		fmt.Printf("Assessment saved: %s\n", assessment.ID)
	}

	return nil
}
