package scorer

import "github.com/BeamX-Solutions/beamx-scorecard/internal/model"

// DeriveFlags evaluates the fixed critical and opportunity predicates over
// the raw answers and computed scores. It is pure and total: predicates are
// independent of each other, multiple flags may fire at once, and the
// returned slices are ordered by the fixed priority ranking in
// model.CriticalFlagOrder / model.OpportunityFlagOrder.
func DeriveFlags(a *model.AnswerSet, report *model.ScoreReport) (critical, opportunity []model.Flag) {
	criticalPredicates := map[model.Flag]bool{
		model.FlagCashFlowCrisis: a.CashFlow == "Burning cash consistently" ||
			a.CashFlow == "Don't know",
		model.FlagNoRunway: a.CashRunway == "Less than 1 month",
		model.FlagMarginBlindness: a.ProfitMargin == "Less than 5% or negative" ||
			a.ProfitMargin == "Don't know",
		model.FlagFounderDependency:    a.FounderDependency == "Cannot miss a single day",
		model.FlagUnregisteredBusiness: a.FormalRegistration == "Not registered",
		model.FlagCustomerChurn:        a.RepeatCustomerRate == "Less than 10% repeat",
	}

	opportunityPredicates := map[model.Flag]bool{
		model.FlagPricingPower: a.PricingPower == "Raised prices recently, kept customers" ||
			a.PricingPower == "Most customers would stay",
		model.FlagStrongFinancials: report.FinancialHealth.RawScore >= strongFinancialsThreshold,
		model.FlagHighRetention:    a.RepeatCustomerRate == "70%+ repeat",
		model.FlagDigitalReady:     a.DigitalPayments == "Over 80% digital",
		model.FlagGrowthMomentum:   a.BusinessTrajectory == "Growing 20%+ year on year",
	}

	critical = make([]model.Flag, 0, len(model.CriticalFlagOrder))
	for _, f := range model.CriticalFlagOrder {
		if criticalPredicates[f] {
			critical = append(critical, f)
		}
	}
	opportunity = make([]model.Flag, 0, len(model.OpportunityFlagOrder))
	for _, f := range model.OpportunityFlagOrder {
		if opportunityPredicates[f] {
			opportunity = append(opportunity, f)
		}
	}
	return critical, opportunity
}
