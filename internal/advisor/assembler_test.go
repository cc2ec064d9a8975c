package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

// makeReport builds a synthetic report with the given category percentages,
// in fixed category order. Raw scores are derived so the invariants hold.
func makeReport(fh, cs, om, fi, gr float64) *model.ScoreReport {
	category := func(name string, pct float64) model.CategoryScore {
		raw := model.Round1(pct / 100 * model.MaxCategoryScore)
		return model.CategoryScore{
			Name:       name,
			RawScore:   raw,
			MaxScore:   model.MaxCategoryScore,
			Percentage: pct,
			Grade:      model.GradeFor(pct),
			Insights:   []string{},
		}
	}

	r := &model.ScoreReport{
		FinancialHealth:       category("Financial Health", fh),
		CustomerStrength:      category("Customer Strength", cs),
		OperationalMaturity:   category("Operational Maturity", om),
		FinancialIntelligence: category("Financial Intelligence", fi),
		GrowthResilience:      category("Growth & Resilience", gr),
	}
	total := 0.0
	for _, c := range r.Categories() {
		total += c.RawScore
	}
	r.TotalScore = model.Round1(total)
	r.ReadinessTier = model.TierFor(r.TotalScore)
	return r
}

func sectionOf(t *testing.T, advisory, heading string) string {
	t.Helper()
	sections := strings.Split(advisory, "\n\n---\n\n")
	for _, s := range sections {
		if strings.HasPrefix(s, heading) {
			return s
		}
	}
	t.Fatalf("no section starting with %q", heading)
	return ""
}

func TestAssemble_Deterministic(t *testing.T) {
	report := makeReport(70, 73.5, 80, 73.5, 70)
	report.PrimaryPainPoint = "Finding new customers"
	report.Industry = "Food & Beverage"
	report.OpportunityFlags = []model.Flag{model.FlagPricingPower}

	first := Assemble(report)
	second := Assemble(report)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestAssemble_ExecutiveSummaryByTierFragment(t *testing.T) {
	tests := []struct {
		tier string
		want string
	}{
		{model.TierScaleReady, "scale-ready"},
		{model.TierStableFoundation, "stable foundation"},
		{model.TierBuildingBlocks, "building blocks"},
		{model.TierSurvivalMode, "survival mode"},
		{model.TierRedAlert, "red zone"},
	}
	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			summary := executiveSummary(tt.tier)
			assert.True(t, strings.HasPrefix(summary, "## Executive Summary"))
			assert.Contains(t, summary, tt.want)
		})
	}
}

// The summary key matches by containment: a hypothetical renamed label that
// still contains a known fragment resolves to that fragment's entry.
func TestAssemble_ExecutiveSummarySubstringMatch(t *testing.T) {
	assert.Equal(t, executiveSummary(model.TierStableFoundation), executiveSummary("Very Stable Indeed"))
}

func TestAssemble_CriticalSectionOmittedWhenClean(t *testing.T) {
	report := makeReport(70, 73.5, 80, 73.5, 70)
	advisory := Assemble(report)
	assert.NotContains(t, advisory, "## Critical Priorities")
}

func TestAssemble_CriticalTruncation(t *testing.T) {
	report := makeReport(20, 25, 30, 35, 40)
	report.CriticalFlags = []model.Flag{
		model.FlagCashFlowCrisis,
		model.FlagNoRunway,
		model.FlagMarginBlindness,
		model.FlagFounderDependency,
	}

	section := sectionOf(t, Assemble(report), "## Critical Priorities")
	assert.Equal(t, 3, strings.Count(section, "### "))
	assert.Contains(t, section, "4 critical issues were identified in total")

	// The three rendered are the highest-priority three.
	assert.Contains(t, section, "Cash Flow Crisis")
	assert.Contains(t, section, "No Cash Runway")
	assert.Contains(t, section, "Margin Blindness")
	assert.NotContains(t, section, "Founder Dependency")
}

func TestAssemble_CriticalExactlyThreeNoNote(t *testing.T) {
	report := makeReport(20, 25, 30, 35, 40)
	report.CriticalFlags = []model.Flag{
		model.FlagCashFlowCrisis,
		model.FlagUnregisteredBusiness,
		model.FlagCustomerChurn,
	}

	section := sectionOf(t, Assemble(report), "## Critical Priorities")
	assert.Equal(t, 3, strings.Count(section, "### "))
	assert.NotContains(t, section, "identified in total")
}

// Critical blocks render in priority order, not the order flags arrived in.
func TestAssemble_CriticalPriorityOrder(t *testing.T) {
	report := makeReport(20, 25, 30, 35, 40)
	report.CriticalFlags = []model.Flag{
		model.FlagCustomerChurn,
		model.FlagCashFlowCrisis,
	}

	section := sectionOf(t, Assemble(report), "## Critical Priorities")
	crisis := strings.Index(section, "Cash Flow Crisis")
	churn := strings.Index(section, "Customer Churn")
	require.NotEqual(t, -1, crisis)
	require.NotEqual(t, -1, churn)
	assert.Less(t, crisis, churn)
}

func TestAssemble_RecommendationCount(t *testing.T) {
	t.Run("second weakest above ceiling", func(t *testing.T) {
		report := makeReport(40, 75, 80, 85, 90)
		section := sectionOf(t, Assemble(report), "## Strategic Recommendations")
		assert.Contains(t, section, "Strengthen Financial Health")
		assert.NotContains(t, section, "Strengthen Customer Strength")
	})

	t.Run("second weakest below ceiling", func(t *testing.T) {
		report := makeReport(40, 55, 80, 85, 90)
		section := sectionOf(t, Assemble(report), "## Strategic Recommendations")
		assert.Contains(t, section, "Strengthen Financial Health")
		assert.Contains(t, section, "Strengthen Customer Strength")
		assert.NotContains(t, section, "Strengthen Operational Maturity")
	})
}

// Ties keep the fixed category declaration order.
func TestAssemble_RecommendationTieBreak(t *testing.T) {
	report := makeReport(40, 40, 40, 40, 40)
	section := sectionOf(t, Assemble(report), "## Strategic Recommendations")
	assert.Contains(t, section, "Strengthen Financial Health")
	assert.Contains(t, section, "Strengthen Customer Strength")
	assert.NotContains(t, section, "Strengthen Operational Maturity")
}

func TestAssemble_PainPointBlock(t *testing.T) {
	report := makeReport(40, 75, 80, 85, 90)
	report.PrimaryPainPoint = "Don't understand my numbers"

	section := sectionOf(t, Assemble(report), "## Strategic Recommendations")
	assert.Contains(t, section, "Your Stated Challenge: Financial Visibility")
	assert.Contains(t, section, report.FinancialIntelligence.Grade)
	assert.Contains(t, section, "85.0%")
}

func TestAssemble_UnmatchedPainPointAndIndustrySilent(t *testing.T) {
	report := makeReport(40, 75, 80, 85, 90)
	report.PrimaryPainPoint = "Something unrecognized"
	report.Industry = "Healthcare"

	section := sectionOf(t, Assemble(report), "## Strategic Recommendations")
	assert.NotContains(t, section, "Your Stated Challenge")
	assert.NotContains(t, section, "Notes")
}

func TestAssemble_IndustryTips(t *testing.T) {
	report := makeReport(40, 75, 80, 85, 90)
	report.Industry = "Food & Beverage"

	section := sectionOf(t, Assemble(report), "## Strategic Recommendations")
	assert.Contains(t, section, "Food & Beverage Notes")
}

func TestAssemble_GrowthOpportunities(t *testing.T) {
	report := makeReport(70, 73.5, 80, 73.5, 70)
	report.OpportunityFlags = []model.Flag{
		model.FlagGrowthMomentum,
		model.FlagPricingPower,
	}

	section := sectionOf(t, Assemble(report), "## Growth Opportunities")
	pricing := strings.Index(section, "Pricing Power")
	momentum := strings.Index(section, "Growth Momentum")
	require.NotEqual(t, -1, pricing)
	require.NotEqual(t, -1, momentum)
	assert.Less(t, pricing, momentum)

	clean := Assemble(makeReport(70, 73.5, 80, 73.5, 70))
	assert.NotContains(t, clean, "## Growth Opportunities")
}

func TestAssemble_NextStepsTiers(t *testing.T) {
	assert.Equal(t, nextStepsStrong, nextSteps(70))
	assert.Equal(t, nextStepsStrong, nextSteps(100))
	assert.Equal(t, nextStepsModerate, nextSteps(50))
	assert.Equal(t, nextStepsModerate, nextSteps(69.9))
	assert.Equal(t, nextStepsUrgent, nextSteps(49.9))
	assert.Equal(t, nextStepsUrgent, nextSteps(0))
}

func TestAssemble_SectionOrderAndSeparator(t *testing.T) {
	report := makeReport(20, 25, 30, 35, 40)
	report.CriticalFlags = []model.Flag{model.FlagCashFlowCrisis}
	report.OpportunityFlags = []model.Flag{model.FlagHighRetention}
	report.PrimaryPainPoint = "Growth has stalled"
	report.Industry = "Technology"

	advisory := Assemble(report)
	sections := strings.Split(advisory, "\n\n---\n\n")
	require.Len(t, sections, 5)
	assert.True(t, strings.HasPrefix(sections[0], "## Executive Summary"))
	assert.True(t, strings.HasPrefix(sections[1], "## Critical Priorities"))
	assert.True(t, strings.HasPrefix(sections[2], "## Strategic Recommendations"))
	assert.True(t, strings.HasPrefix(sections[3], "## Growth Opportunities"))
	assert.True(t, strings.HasPrefix(sections[4], "## Next Steps"))
}

// Every flag and every category has its fixed block; a missing map entry
// would render as an empty block.
func TestAssemble_BlockTablesComplete(t *testing.T) {
	for _, f := range model.CriticalFlagOrder {
		assert.NotEmpty(t, criticalPlaybooks[f], string(f))
	}
	for _, f := range model.OpportunityFlagOrder {
		assert.NotEmpty(t, opportunityBlocks[f], string(f))
	}
	report := makeReport(50, 50, 50, 50, 50)
	for _, c := range report.Categories() {
		assert.NotEmpty(t, categoryRecommendations[c.Name], c.Name)
	}
	for _, p := range model.PrimaryPainPointValues {
		playbook, ok := painPointPlaybooks[p]
		require.True(t, ok, p)
		assert.NotEmpty(t, playbook(report), p)
	}
}
