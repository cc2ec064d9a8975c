package main

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/advisor"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a batch of businesses from a JSONL file",
	Long: `Score many questionnaires concurrently. The input file holds one
answers JSON object per line. Results are persisted when --save is set;
scoring failures are logged and skipped without aborting the batch.`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringP("file", "f", "", "path to answers JSONL file (required)")
	f.Bool("polish", false, "rewrite advisories through the narrative service")
	f.Bool("save", false, "persist assessments to the configured database")
	f.Int("limit", 0, "max number of lines to process (0 = all)")
	batchCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path, _ := cmd.Flags().GetString("file")
	polish, _ := cmd.Flags().GetBool("polish")
	save, _ := cmd.Flags().GetBool("save")
	limit, _ := cmd.Flags().GetInt("limit")

	batches, err := readAnswerLines(path, limit)
	if err != nil {
		return err
	}

	var polisher *advisor.Polisher
	if polish {
		if polisher = newPolisher(); polisher == nil {
			return eris.New("batch: --polish requires anthropic.key in config or BEAMX_ANTHROPIC_KEY")
		}
	}

	var s store.Store
	if save {
		if s, err = openStore(ctx); err != nil {
			return err
		}
		defer s.Close()
	}

	return processBatch(ctx, batches, polisher, s)
}

// readAnswerLines parses a JSONL file into answer sets, applying the limit.
func readAnswerLines(path string, limit int) ([]model.AnswerSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: open %s", path)
	}
	defer f.Close()

	var out []model.AnswerSet
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var a model.AnswerSet
		if err := json.Unmarshal(scanner.Bytes(), &a); err != nil {
			return nil, eris.Wrapf(err, "batch: parse line %d", line)
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, eris.Wrap(scanner.Err(), "batch: read")
}

// processBatch scores answer sets concurrently. Polish calls share a rate
// limiter so a large batch does not hammer the narrative service.
func processBatch(ctx context.Context, batches []model.AnswerSet, polisher *advisor.Polisher, s store.Store) error {
	if len(batches) == 0 {
		zap.L().Info("no answers to process")
		return nil
	}

	concurrency := cfg.Batch.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	var limiter *rate.Limiter
	if polisher != nil {
		perSecond := cfg.Batch.PolishPerSecond
		if perSecond <= 0 {
			perSecond = 1
		}
		limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}

	zap.L().Info("processing batch",
		zap.Int("answers", len(batches)),
		zap.Int("concurrency", concurrency),
		zap.Bool("polish", polisher != nil),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for i := range batches {
		answers := batches[i]
		g.Go(func() error {
			log := zap.L().With(zap.String("business", answers.BusinessName))

			p := polisher
			if p != nil {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
			}

			assessment, err := runAssessment(gctx, &answers, p)
			if err != nil {
				failed.Add(1)
				log.Error("assessment failed", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			if s != nil {
				if err := s.SaveAssessment(gctx, assessment); err != nil {
					failed.Add(1)
					log.Error("save failed", zap.Error(err))
					return nil
				}
			}

			succeeded.Add(1)
			log.Info("assessment complete",
				zap.Float64("total_score", assessment.Report.TotalScore),
				zap.String("tier", assessment.Report.ReadinessTier),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
