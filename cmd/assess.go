package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/advisor"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/scorer"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/store"
	"github.com/BeamX-Solutions/beamx-scorecard/pkg/anthropic"
)

// newPolisher builds the narrative polisher from config, or nil when no API
// key is configured. Callers treat nil as "skip the polish pass".
func newPolisher() *advisor.Polisher {
	if cfg.Anthropic.Key == "" {
		return nil
	}
	return advisor.NewPolisher(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic)
}

// runAssessment is the full engine pass shared by score, batch, and serve:
// validate, score, derive flags, assemble the advisory, and optionally polish.
func runAssessment(ctx context.Context, answers *model.AnswerSet, polisher *advisor.Polisher) (*model.Assessment, error) {
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	report, err := scorer.Evaluate(answers)
	if err != nil {
		return nil, err
	}

	advisory := advisor.Assemble(report)
	polished := false
	if polisher != nil {
		rewritten := polisher.Polish(ctx, advisory, report, answers.OwnerName, answers.BusinessName)
		polished = rewritten != advisory
		advisory = rewritten
	}

	return &model.Assessment{
		ID:          uuid.New().String(),
		Answers:     *answers,
		Report:      *report,
		Advisory:    advisory,
		Polished:    polished,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// openStore connects to the configured database. Errors when persistence is
// requested but no database is configured.
func openStore(ctx context.Context) (store.Store, error) {
	if cfg.Store.DatabaseURL == "" {
		return nil, eris.New("store: no database_url configured")
	}
	s, err := store.NewPostgres(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
