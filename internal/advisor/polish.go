package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/config"
	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
	"github.com/BeamX-Solutions/beamx-scorecard/pkg/anthropic"
)

// polishSystemPrompt is the fixed instruction contract for the rewrite pass.
// The rewrite may change tone only; every fact must survive verbatim.
const polishSystemPrompt = `You are a business advisor rewriting an SME assessment report to sound warm, direct, and personal.

Rules, all mandatory:
- Preserve every number, score, grade, and percentage exactly as written.
- Preserve every recommendation and action step; you may rephrase, never remove or add.
- Preserve all section markers (## headings and --- separators) in place.
- Keep the overall length comparable to the input.
- Write in second person, addressing the owner by first name.
- Do not invent facts, figures, or promises that are not in the input.

Return only the rewritten report, no preamble.`

// Polisher rewrites a structured advisory through the narrative service. It
// never fails the request: any error path returns the input unchanged.
type Polisher struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// NewPolisher builds a Polisher from configuration.
func NewPolisher(client anthropic.Client, cfg config.AnthropicConfig) *Polisher {
	return &Polisher{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
	}
}

// Polish sends the advisory for a tone rewrite and returns the result. On
// timeout, service error, or an empty response it logs a warning and returns
// the structured advisory unchanged; the caller never sees an error.
func (p *Polisher) Polish(ctx context.Context, advisory string, report *model.ScoreReport, ownerName, businessName string) string {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		System:    polishSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: polishUserPrompt(advisory, report, ownerName, businessName)},
		},
	})
	if err != nil {
		zap.L().Warn("advisor: polish failed, returning structured advisory",
			zap.String("business", businessName),
			zap.Error(err),
		)
		return advisory
	}

	polished := strings.TrimSpace(resp.Text)
	if polished == "" {
		zap.L().Warn("advisor: polish returned empty text, returning structured advisory",
			zap.String("business", businessName),
		)
		return advisory
	}

	resp.Usage.LogUsage(p.model, "polish")
	return polished
}

func polishUserPrompt(advisory string, report *model.ScoreReport, ownerName, businessName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Owner: %s\n", ownerName)
	fmt.Fprintf(&b, "Business: %s\n", businessName)
	fmt.Fprintf(&b, "Total score: %.1f/100\n", report.TotalScore)
	fmt.Fprintf(&b, "Readiness tier: %s\n", report.ReadinessTier)
	fmt.Fprintf(&b, "Primary pain point: %s\n", report.PrimaryPainPoint)
	fmt.Fprintf(&b, "Industry: %s\n", report.Industry)
	fmt.Fprintf(&b, "Years in business: %s\n\n", report.YearsInBusiness)
	b.WriteString("Report to rewrite:\n\n")
	b.WriteString(advisory)
	return b.String()
}
