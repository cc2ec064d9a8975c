package scorer

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

// Score computes the five dimension scores for a validated AnswerSet and
// returns the structured report with insights attached. Flags are derived
// separately by DeriveFlags; Evaluate combines both.
//
// Score never fails for answers inside the declared vocabularies. A missing
// table entry is a contract violation between the answer schema and the
// scoring tables and surfaces as an error rather than a silent default.
func Score(a *model.AnswerSet) (*model.ScoreReport, error) {
	fh, err := scoreFinancialHealth(a)
	if err != nil {
		return nil, err
	}
	cs, err := scoreCustomerStrength(a)
	if err != nil {
		return nil, err
	}
	om, err := scoreOperationalMaturity(a)
	if err != nil {
		return nil, err
	}
	fi, err := scoreFinancialIntelligence(a)
	if err != nil {
		return nil, err
	}
	gr, err := scoreGrowthResilience(a)
	if err != nil {
		return nil, err
	}

	report := &model.ScoreReport{
		FinancialHealth:       newCategoryScore("Financial Health", fh, financialHealthInsights(a)),
		CustomerStrength:      newCategoryScore("Customer Strength", cs, customerStrengthInsights(a)),
		OperationalMaturity:   newCategoryScore("Operational Maturity", om, operationalMaturityInsights(a)),
		FinancialIntelligence: newCategoryScore("Financial Intelligence", fi, financialIntelligenceInsights(a)),
		GrowthResilience:      newCategoryScore("Growth & Resilience", gr, growthResilienceInsights(a)),
		PrimaryPainPoint:      a.PrimaryPainPoint,
		Industry:              a.Industry,
		YearsInBusiness:       a.YearsInBusiness,
	}

	// Total sums the published (rounded) category scores so the report is
	// internally consistent for the reader.
	var total float64
	for _, c := range report.Categories() {
		total += c.RawScore
	}
	report.TotalScore = model.Round1(total)
	report.ReadinessTier = model.TierFor(report.TotalScore)

	return report, nil
}

// Evaluate runs the full scoring half of the engine: dimension scores,
// insights, and flag derivation, in that order.
func Evaluate(a *model.AnswerSet) (*model.ScoreReport, error) {
	report, err := Score(a)
	if err != nil {
		return nil, err
	}
	report.CriticalFlags, report.OpportunityFlags = DeriveFlags(a, report)

	zap.L().Debug("scorer: evaluation complete",
		zap.String("business", a.BusinessName),
		zap.Float64("total_score", report.TotalScore),
		zap.String("tier", report.ReadinessTier),
		zap.Int("critical_flags", len(report.CriticalFlags)),
		zap.Int("opportunity_flags", len(report.OpportunityFlags)),
	)
	return report, nil
}

// newCategoryScore normalizes a 0-20 raw value into a published score with
// percentage and grade. The percentage derives from the rounded raw score so
// the invariant percentage == round(raw/max*100, 1) holds on the published
// numbers.
func newCategoryScore(name string, raw float64, insights []string) model.CategoryScore {
	rounded := model.Round1(raw)
	pct := model.Round1(rounded / model.MaxCategoryScore * 100)
	return model.CategoryScore{
		Name:       name,
		RawScore:   rounded,
		MaxScore:   model.MaxCategoryScore,
		Percentage: pct,
		Grade:      model.GradeFor(pct),
		Insights:   insights,
	}
}

// scoreFinancialHealth sums cash flow posture, margin band, runway band, and
// payment speed. The four tables are calibrated to sum to the 20-point
// ceiling, so normalization is the identity.
func scoreFinancialHealth(a *model.AnswerSet) (float64, error) {
	raw, err := sumPoints([]tableLookup{
		{"cashFlow", cashFlowPoints, a.CashFlow},
		{"profitMargin", profitMarginPoints, a.ProfitMargin},
		{"cashRunway", cashRunwayPoints, a.CashRunway},
		{"paymentSpeed", paymentSpeedPoints, a.PaymentSpeed},
	})
	if err != nil {
		return 0, err
	}
	return float64(raw) / financialHealthRawMax * model.MaxCategoryScore, nil
}

func scoreCustomerStrength(a *model.AnswerSet) (float64, error) {
	raw, err := sumPoints([]tableLookup{
		{"repeatCustomerRate", repeatCustomerRatePoints, a.RepeatCustomerRate},
		{"acquisitionChannel", acquisitionChannelPoints, a.AcquisitionChannel},
		{"pricingPower", pricingPowerPoints, a.PricingPower},
	})
	if err != nil {
		return 0, err
	}
	return float64(raw) / customerStrengthRawMax * model.MaxCategoryScore, nil
}

func scoreOperationalMaturity(a *model.AnswerSet) (float64, error) {
	raw, err := sumPoints([]tableLookup{
		{"founderDependency", founderDependencyPoints, a.FounderDependency},
		{"processDocumentation", processDocumentationPoints, a.ProcessDocumentation},
		{"inventoryTracking", inventoryTrackingPoints, a.InventoryTracking},
	})
	if err != nil {
		return 0, err
	}
	return float64(raw) / operationalMaturityRawMax * model.MaxCategoryScore, nil
}

func scoreFinancialIntelligence(a *model.AnswerSet) (float64, error) {
	raw, err := sumPoints([]tableLookup{
		{"expenseAwareness", expenseAwarenessPoints, a.ExpenseAwareness},
		{"profitPerProduct", profitPerProductPoints, a.ProfitPerProduct},
		{"pricingStrategy", pricingStrategyPoints, a.PricingStrategy},
	})
	if err != nil {
		return 0, err
	}
	return float64(raw) / financialIntelligenceRawMax * model.MaxCategoryScore, nil
}

// scoreGrowthResilience is two-part: trajectory and diversification form the
// primary base (out of 10, scaled to 12); digital payments, registration,
// infrastructure, and banking contribute a weighted enabling context worth
// up to 8.
func scoreGrowthResilience(a *model.AnswerSet) (float64, error) {
	base, err := sumPoints([]tableLookup{
		{"businessTrajectory", businessTrajectoryPoints, a.BusinessTrajectory},
		{"revenueDiversification", revenueDiversificationPoints, a.RevenueDiversification},
	})
	if err != nil {
		return 0, err
	}

	digital, err := lookup("digitalPayments", digitalPaymentsPoints, a.DigitalPayments)
	if err != nil {
		return 0, err
	}
	registration, err := lookup("formalRegistration", formalRegistrationPoints, a.FormalRegistration)
	if err != nil {
		return 0, err
	}
	infra, err := lookup("infrastructure", infrastructurePoints, a.Infrastructure)
	if err != nil {
		return 0, err
	}
	banking, err := lookup("bankingRelationship", bankingRelationshipPoints, a.BankingRelationship)
	if err != nil {
		return 0, err
	}

	baseScore := float64(base) / growthBaseRawMax * growthBaseCeiling
	context := float64(digital)*digitalPaymentsWeight +
		float64(registration)*formalRegistrationWeight +
		float64(infra)*infrastructureWeight +
		float64(banking)*bankingWeight

	return baseScore + context, nil
}

type tableLookup struct {
	field string
	table map[string]int
	value string
}

func sumPoints(lookups []tableLookup) (int, error) {
	var sum int
	for _, l := range lookups {
		pts, err := lookup(l.field, l.table, l.value)
		if err != nil {
			return 0, err
		}
		sum += pts
	}
	return sum, nil
}

func lookup(field string, table map[string]int, value string) (int, error) {
	pts, ok := table[value]
	if !ok {
		return 0, eris.Errorf("scorer: no table entry for %s=%q", field, value)
	}
	return pts, nil
}
