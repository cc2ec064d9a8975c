// Package advisor turns a ScoreReport into the advisory text shown to the
// business owner: a deterministic rule-based assembly pass, optionally
// followed by a narrative polish call.
package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

const (
	sectionSeparator = "\n\n---\n\n"

	// maxCriticalBlocks caps the rendered critical priorities; anything
	// beyond the cap is summarized in a count note.
	maxCriticalBlocks = 3

	// secondRecommendationCeiling gates the second category recommendation:
	// it renders only when the second-weakest category sits below this
	// percentage.
	secondRecommendationCeiling = 60.0
)

// Assemble composes the structured advisory from a score report. It is pure:
// the report is the only input, two calls with the same report produce
// byte-identical output, and nothing here touches the network.
func Assemble(report *model.ScoreReport) string {
	sections := []string{
		executiveSummary(report.ReadinessTier),
	}

	if block := criticalPriorities(report.CriticalFlags); block != "" {
		sections = append(sections, block)
	}

	sections = append(sections, strategicRecommendations(report))

	if block := growthOpportunities(report.OpportunityFlags); block != "" {
		sections = append(sections, block)
	}

	sections = append(sections, nextSteps(report.TotalScore))

	return strings.Join(sections, sectionSeparator)
}

// executiveSummary selects the summary whose key fragment appears in the
// tier label. Matching is by containment, not equality; see DESIGN.md for
// why this is preserved as-is.
func executiveSummary(tier string) string {
	for _, entry := range executiveSummaries {
		if strings.Contains(tier, entry.fragment) {
			return entry.text
		}
	}
	// Unreachable for any tier TierFor produces; kept total anyway.
	return executiveSummaries[len(executiveSummaries)-1].text
}

// criticalPriorities renders up to maxCriticalBlocks playbooks in the fixed
// priority order, with a count note when flags were truncated. Returns ""
// when no critical flags fired.
func criticalPriorities(flags []model.Flag) string {
	if len(flags) == 0 {
		return ""
	}

	blocks := []string{"## Critical Priorities"}
	rendered := 0
	for _, flag := range model.CriticalFlagOrder {
		if rendered == maxCriticalBlocks {
			break
		}
		if !containsFlag(flags, flag) {
			continue
		}
		blocks = append(blocks, criticalPlaybooks[flag])
		rendered++
	}

	if len(flags) > maxCriticalBlocks {
		blocks = append(blocks, fmt.Sprintf("*%d critical issues were identified in total; the %d most urgent are shown above.*", len(flags), maxCriticalBlocks))
	}

	return strings.Join(blocks, "\n\n")
}

// strategicRecommendations renders the weakest category's block, the
// second-weakest when it is below the ceiling, then optional pain-point and
// industry blocks. Always emits at least the weakest-category block.
func strategicRecommendations(report *model.ScoreReport) string {
	ranked := report.Categories()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage < ranked[j].Percentage
	})

	blocks := []string{"## Strategic Recommendations"}
	blocks = append(blocks, categoryRecommendations[ranked[0].Name])
	if ranked[1].Percentage < secondRecommendationCeiling {
		blocks = append(blocks, categoryRecommendations[ranked[1].Name])
	}

	if playbook, ok := painPointPlaybooks[report.PrimaryPainPoint]; ok {
		blocks = append(blocks, playbook(report))
	}
	if tips, ok := industryTips[report.Industry]; ok {
		blocks = append(blocks, tips)
	}

	return strings.Join(blocks, "\n\n")
}

// growthOpportunities renders one fixed block per opportunity flag in
// declaration order. Returns "" when no opportunity flags fired.
func growthOpportunities(flags []model.Flag) string {
	if len(flags) == 0 {
		return ""
	}

	blocks := []string{"## Growth Opportunities"}
	for _, flag := range model.OpportunityFlagOrder {
		if containsFlag(flags, flag) {
			blocks = append(blocks, opportunityBlocks[flag])
		}
	}

	return strings.Join(blocks, "\n\n")
}

// nextSteps picks the closing block by total score. The three ranges are
// exhaustive over 0-100.
func nextSteps(total float64) string {
	switch {
	case total >= 70:
		return nextStepsStrong
	case total >= 50:
		return nextStepsModerate
	default:
		return nextStepsUrgent
	}
}

func containsFlag(flags []model.Flag, f model.Flag) bool {
	for _, candidate := range flags {
		if candidate == f {
			return true
		}
	}
	return false
}
